// Package date modela fechas de calendario con granularidad de día (sin hora ni zona).
// Se usa en los filtros de reportes (date_from/date_to) y en la fecha de los gastos.
package date

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Layout formato ISO-8601 de escritura (YYYY-MM-DD).
const Layout = "2006-01-02"

// readLayout acepta también mes/día de un dígito (2025-7-1).
const readLayout = "2006-1-2"

// Date fecha de calendario. El valor cero representa "sin fecha".
type Date struct {
	y int
	m time.Month
	d int
}

// New devuelve una Date normalizada (31 de febrero pasa a marzo).
func New(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	y, m, d := t.Date()
	return Date{y, m, d}
}

// Of devuelve el día calendario de t en la zona loc.
func Of(t time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return New(t.In(loc).Date())
}

// Today fecha actual en la zona loc.
func Today(loc *time.Location) Date { return Of(time.Now(), loc) }

// Parse interpreta YYYY-MM-DD (tolerante a un dígito en mes y día).
func Parse(s string) (Date, error) {
	t, err := time.Parse(readLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("fecha inválida %q, formato esperado %q: %w", s, Layout, err)
	}
	return New(t.Date()), nil
}

// MustParse como Parse pero entra en pánico si hay error (útil en tests y datos semilla).
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }
func (d Date) IsZero() bool      { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before indica si d es anterior a x.
func (d Date) Before(x Date) bool { return d.utc().Before(x.utc()) }

// After indica si d es posterior a x.
func (d Date) After(x Date) bool { return d.utc().After(x.utc()) }

// AddDays suma n días (n puede ser negativo).
func (d Date) AddDays(n int) Date { return New(d.y, d.m, d.d+n) }

// Start instante de las 00:00 de d en la zona loc.
func (d Date) Start(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, loc)
}

func (d Date) utc() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// String formatea como YYYY-MM-DD; la fecha cero se representa como "".
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.utc().Format(Layout)
}

// MarshalJSON serializa como "YYYY-MM-DD" o null si es cero.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON acepta "YYYY-MM-DD", "" o null.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implementa driver.Valuer (columna DATE en PostgreSQL, TEXT en SQLite).
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan implementa sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = New(v.Date())
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("date: tipo no soportado %T", src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) > len(Layout) {
		s = s[:len(Layout)]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
