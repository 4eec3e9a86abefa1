package date

import (
	"fmt"
	"time"
)

// Range intervalo de fechas inclusivo en ambos extremos. Un extremo cero significa "sin límite".
type Range struct{ From, To Date }

// ParseRange construye un Range desde strings YYYY-MM-DD; vacío = sin límite.
func ParseRange(from, to string) (Range, error) {
	var r Range
	var err error
	if from != "" {
		if r.From, err = Parse(from); err != nil {
			return Range{}, err
		}
	}
	if to != "" {
		if r.To, err = Parse(to); err != nil {
			return Range{}, err
		}
	}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Validate rechaza rangos invertidos.
func (r Range) Validate() error {
	if !r.From.IsZero() && !r.To.IsZero() && r.From.After(r.To) {
		return fmt.Errorf("date_from %s es posterior a date_to %s", r.From, r.To)
	}
	return nil
}

// Contains indica si d cae dentro del rango (límites incluidos).
func (r Range) Contains(d Date) bool {
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && d.After(r.To) {
		return false
	}
	return true
}

// Bounds convierte el rango a instantes [start, end) en la zona loc.
// end es el inicio del día siguiente a To, así la hora del día no influye en el filtro.
func (r Range) Bounds(loc *time.Location) (start, end *time.Time) {
	if !r.From.IsZero() {
		s := r.From.Start(loc)
		start = &s
	}
	if !r.To.IsZero() {
		e := r.To.AddDays(1).Start(loc)
		end = &e
	}
	return start, end
}

// String etiqueta legible del período.
func (r Range) String() string {
	switch {
	case r.From.IsZero() && r.To.IsZero():
		return "todo el historial"
	case r.From.IsZero():
		return "hasta " + r.To.String()
	case r.To.IsZero():
		return "desde " + r.From.String()
	case r.From == r.To:
		return r.From.String()
	default:
		return r.From.String() + " a " + r.To.String()
	}
}
