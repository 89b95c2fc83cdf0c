package rest

import (
	"net/url"

	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/domain/repository"
)

const metadataPath = "metadata"

func collectionPath(c repository.Collection) string {
	return string(c)
}

func recordPath(c repository.Collection, id entity.ID) string {
	return string(c) + "/" + url.PathEscape(id.String())
}
