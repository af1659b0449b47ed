package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarHeader is sent by the DataStar client on every backend action.
	DataStarHeader = "Datastar-Request"

	// DataStarQueryParam carries signals on GET requests.
	DataStarQueryParam = "datastar"
)

// IsDataStar reports whether r was issued by the DataStar client.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

// ReadSignals decodes the signals DataStar sent with r into v.
func ReadSignals(r *http.Request, v any) error {
	if err := datastar.ReadSignals(r, v); err != nil {
		return NewHTTPError(http.StatusBadRequest, ErrBadRequest.Key)
	}
	return nil
}

// signalsResponse patches client signals over a single SSE event.
type signalsResponse struct {
	signals any
}

func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return ErrNotDataStar
	}
	data, err := json.Marshal(s.signals)
	if err != nil {
		return err
	}
	return datastar.NewSSE(w, r).PatchSignals(data)
}

// Signals answers a DataStar request by merging v into the page signals.
//
//	return handler.Signals(map[string]any{"rut": formatted, "caret": caret})
func Signals(v any) Response {
	return signalsResponse{signals: v}
}
