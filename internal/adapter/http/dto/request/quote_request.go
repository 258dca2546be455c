package request

import (
	"encoding/json"
	"strings"

	"cuidandote_presupuestos/internal/usecase"
)

// FlexInt accepts either a JSON number or a numeric string. Garbage strings
// decode to 0, mirroring how the public form's values have historically been
// coerced.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*f = FlexInt(leadingInt(str))
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexInt(int(n))
	return nil
}

// leadingInt parses the leading integer of a string, 0 when there is none.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	n, sign := 0, 1
	if strings.HasPrefix(s, "-") {
		sign = -1
	}
	digits := false
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		digits = true
	}
	if !digits {
		return 0
	}
	return sign * n
}

// FlexBool treats any non-empty, non-zero value as acceptance: true, 1,
// "1", "yes"... Only false, 0, "", "0" and null are falsy.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch s {
	case "null", "false", "0", `""`, `"0"`:
		*f = false
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*f = str != "" && str != "0"
		return nil
	}
	if s == "true" {
		*f = true
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = n != 0
	return nil
}

type ContactRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	PostalCode    string   `json:"postalCode"`
	PrivacyPolicy FlexBool `json:"privacyPolicy"`
}

type TimeSlotRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type DayScheduleRequest struct {
	Day   string            `json:"day"`
	Slots []TimeSlotRequest `json:"slots"`
}

type ScheduleEntryRequest struct {
	Value string               `json:"value"`
	Days  []DayScheduleRequest `json:"days"`
}

type DateTimeRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// QuoteRequest is the budget form submission.
type QuoteRequest struct {
	Contacto         ContactRequest         `json:"contacto"`
	SelectedDays     []string               `json:"selectedDays"`
	SelectedWeeks    *FlexInt               `json:"selectedWeeks"`
	DurationType     string                 `json:"durationType"`
	SelectedSchedule []ScheduleEntryRequest `json:"selectedSchedule"`
	SelectedDateTime *DateTimeRequest       `json:"selectedDateTime"`

	scheduleDetail string
}

// ParseQuoteRequest decodes the request body, unwrapping the optional
// {"data": {...}} envelope some form builders add. Alongside the typed
// fields it re-serializes the sanitized raw schedule for verbatim storage.
func ParseQuoteRequest(raw []byte) (QuoteRequest, error) {
	payload := raw
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 {
		payload = envelope.Data
	}

	var req QuoteRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return QuoteRequest{}, err
	}

	req.scheduleDetail = "[]"
	var generic struct {
		SelectedSchedule any `json:"selectedSchedule"`
	}
	if err := json.Unmarshal(payload, &generic); err == nil && generic.SelectedSchedule != nil {
		if b, err := json.Marshal(CleanValue(generic.SelectedSchedule)); err == nil {
			req.scheduleDetail = string(b)
		}
	}
	return req, nil
}

// ToCommand converts the submission into the use case command, applying the
// field coercions the form contract allows: week count defaults to 4 when
// absent, call date flips from DD-MM-YYYY to YYYY-MM-DD, call time gains
// seconds.
func (r QuoteRequest) ToCommand(ip, userAgent string) usecase.QuoteCommand {
	weeks := 4
	if r.SelectedWeeks != nil {
		weeks = int(*r.SelectedWeeks)
	}

	duracion := CleanText(r.DurationType)
	if duracion == "" {
		duracion = "larga"
	}

	var fecha, hora string
	if r.SelectedDateTime != nil {
		fecha = normalizeCallDate(r.SelectedDateTime.Date)
		if t := strings.TrimSpace(r.SelectedDateTime.Time); t != "" {
			hora = t + ":00"
		}
	}

	days := make([]string, 0, len(r.SelectedDays))
	for _, d := range r.SelectedDays {
		if d = CleanText(d); d != "" {
			days = append(days, d)
		}
	}

	horario := make([]usecase.ScheduleEntry, 0, len(r.SelectedSchedule))
	for _, e := range r.SelectedSchedule {
		entry := usecase.ScheduleEntry{Value: CleanText(e.Value)}
		for _, d := range e.Days {
			day := usecase.DaySchedule{Day: CleanText(d.Day)}
			for _, s := range d.Slots {
				day.Slots = append(day.Slots, usecase.TimeSlot{
					From: strings.TrimSpace(s.From),
					To:   strings.TrimSpace(s.To),
				})
			}
			entry.Days = append(entry.Days, day)
		}
		horario = append(horario, entry)
	}

	return usecase.QuoteCommand{
		Nombre:           CleanText(r.Contacto.Name),
		Email:            strings.TrimSpace(r.Contacto.Email),
		Telefono:         CleanText(r.Contacto.Phone),
		CodigoPostal:     CleanText(r.Contacto.PostalCode),
		LlamadaFecha:     fecha,
		LlamadaHora:      hora,
		DiasSemana:       days,
		Semanas:          weeks,
		DuracionTipo:     duracion,
		Horario:          horario,
		HorarioDetalle:   r.scheduleDetail,
		AceptaPrivacidad: bool(r.Contacto.PrivacyPolicy),
		IPAddress:        ip,
		UserAgent:        userAgent,
	}
}

// normalizeCallDate flips DD-MM-YYYY into YYYY-MM-DD. Anything else comes
// back empty.
func normalizeCallDate(raw string) string {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 3 {
		return ""
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}
