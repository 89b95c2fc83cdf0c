package command_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/amazonia/internal/application/command"
	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/internal/application/inventory"
	"github.com/jhoicas/amazonia/internal/application/sales"
	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/domain/entity"
)

type fakeClients struct {
	saved   []command.SaveRecord[dto.ClientForm]
	deleted []entity.ID
}

func (f *fakeClients) Save(_ context.Context, id entity.ID, form dto.ClientForm) (*entity.Client, error) {
	f.saved = append(f.saved, command.SaveRecord[dto.ClientForm]{ID: id, Form: form})
	if id == "" {
		id = "10"
	}
	return &entity.Client{ID: id, Name: form.Name}, nil
}

func (f *fakeClients) Delete(_ context.Context, id entity.ID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeStock struct{}

func (fakeStock) Adjust(_ context.Context, _ entity.ID, op inventory.Operation, qty int) (int, error) {
	if op == inventory.OperationSubtract {
		return 5 - qty, nil
	}
	return 5 + qty, nil
}

type fakeBackup struct{ phrase string }

func (f *fakeBackup) Import(context.Context, []byte) (*dto.ImportResponse, error) {
	return &dto.ImportResponse{}, nil
}

func (f *fakeBackup) Reset(_ context.Context, phrase string) error {
	f.phrase = phrase
	return nil
}

func newDispatcher(s command.Services) *command.Dispatcher {
	d := command.NewDispatcher(zerolog.Nop())
	command.Register(d, s)
	return d
}

func TestDispatch_ComandoDesconocido(t *testing.T) {
	d := newDispatcher(command.Services{})

	_, err := d.Dispatch(context.Background(), command.Command{Kind: command.SaveProduct})

	assert.ErrorIs(t, err, domain.ErrUnknownCommand)
	assert.True(t, command.IsUnknown(err))
}

func TestDispatch_DestructivoSinConfirmar(t *testing.T) {
	clients := &fakeClients{}
	d := newDispatcher(command.Services{Clients: clients})

	_, err := d.Dispatch(context.Background(), command.Command{
		Kind:    command.DeleteClient,
		Payload: command.RecordID{ID: "1"},
	})

	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, clients.deleted)

	_, err = d.Dispatch(context.Background(), command.Command{
		Kind:      command.DeleteClient,
		Confirmed: true,
		Payload:   command.RecordID{ID: "1"},
	})
	require.NoError(t, err)
	assert.Equal(t, []entity.ID{"1"}, clients.deleted)
}

func TestDispatch_SaveNoRequiereConfirmacion(t *testing.T) {
	clients := &fakeClients{}
	d := newDispatcher(command.Services{Clients: clients})

	out, err := d.Dispatch(context.Background(), command.Command{
		Kind:    command.SaveClient,
		Payload: command.SaveRecord[dto.ClientForm]{Form: dto.ClientForm{Name: "Ana"}},
	})

	require.NoError(t, err)
	c, ok := out.(*entity.Client)
	require.True(t, ok)
	assert.Equal(t, entity.ID("10"), c.ID)
	assert.Equal(t, "Ana", clients.saved[0].Form.Name)
}

func TestDispatch_PayloadIncorrecto(t *testing.T) {
	d := newDispatcher(command.Services{Clients: &fakeClients{}})

	_, err := d.Dispatch(context.Background(), command.Command{Kind: command.SaveClient, Payload: "Ana"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDispatch_AjusteDeStock(t *testing.T) {
	d := newDispatcher(command.Services{Stock: fakeStock{}})

	out, err := d.Dispatch(context.Background(), command.Command{
		Kind:    command.AdjustStock,
		Payload: command.StockChange{ProductID: "3", Operation: inventory.OperationSubtract, Quantity: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, &dto.StockAdjustmentResponse{ProductID: "3", Stock: 3}, out)
}

func TestDispatch_Reset(t *testing.T) {
	b := &fakeBackup{}
	d := newDispatcher(command.Services{Backup: b})

	_, err := d.Dispatch(context.Background(), command.Command{
		Kind:      command.ResetData,
		Confirmed: true,
		Payload:   command.ResetRequest{Phrase: "REINICIAR"},
	})

	require.NoError(t, err)
	assert.Equal(t, "REINICIAR", b.phrase)
}

func TestDispatch_CarritoDevuelveLineas(t *testing.T) {
	cart := sales.NewCart()
	d := newDispatcher(command.Services{Cart: fakeCart{cart}})

	out, err := d.Dispatch(context.Background(), command.Command{Kind: command.ClearCart})

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestKind_Destructive(t *testing.T) {
	for _, k := range []command.Kind{
		command.DeleteProduct, command.DeleteClient, command.DeleteCategory,
		command.DeleteSale, command.ImportBackup, command.ResetData,
	} {
		assert.True(t, k.Destructive(), string(k))
	}
	for _, k := range []command.Kind{command.SaveProduct, command.AdjustStock, command.RegisterSale, command.AddToCart, command.Reload} {
		assert.False(t, k.Destructive(), string(k))
	}
}

type fakeCart struct{ cart *sales.Cart }

func (f fakeCart) Add(entity.ID, int) error { return nil }
func (f fakeCart) Remove(entity.ID) error { return nil }
func (f fakeCart) Clear() { f.cart.Clear() }
func (f fakeCart) Lines() []sales.CartLine { return f.cart.Lines() }
