package sales

import "fmt"

// SagaError falla del registro de venta después de haber escrito en el backend.
// Compensated indica si se revirtieron todos los pasos ya aplicados; si no,
// JournalID identifica la marca de venta incompleta para conciliación manual.
type SagaError struct {
	Step        string
	Compensated bool
	JournalID   string
	Err         error
}

func (e *SagaError) Error() string {
	if e.Compensated {
		return fmt.Sprintf("registro de venta falló en el paso %q (cambios revertidos): %v", e.Step, e.Err)
	}
	return fmt.Sprintf("registro de venta falló en el paso %q, requiere conciliación manual: %v", e.Step, e.Err)
}

func (e *SagaError) Unwrap() error { return e.Err }
