package query

import "strings"

// ImageSrc ruta de la imagen de un producto. URLs absolutas y rutas que empiezan
// por "./" o "/" se usan tal cual; el resto se concatena a base (que debe
// terminar en "/").
func ImageSrc(base, url string) string {
	if url == "" {
		return ""
	}
	for _, prefix := range []string{"http://", "https://", "./", "/"} {
		if strings.HasPrefix(url, prefix) {
			return url
		}
	}
	return base + url
}
