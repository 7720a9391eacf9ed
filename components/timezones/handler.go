package timezones

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/markup"
)

// StatusError lets a GuardFunc choose the HTTP status of a rejection.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.StatusCode())
}

func (e StatusError) Unwrap() error { return e.Err }

// StatusCode defaults to 403 for unset codes.
func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusForbidden
	}
	return e.Code
}

type choicesResponse struct {
	Data []helpers.Choice `json:"data"`
}

// OptionsFragment renders one <option> per choice, marking the choice whose
// value equals selected.
func OptionsFragment(choices []helpers.Choice, selected string) markup.HTML {
	var b strings.Builder
	for _, choice := range choices {
		attrs := markup.Attrs{{Key: "value", Value: choice.Value}}
		if selected != "" && markup.String(choice.Value) == selected {
			attrs.Set("selected", true)
		}
		b.WriteString(markup.Element("option", true, attrs, markup.Content(choice.Text)))
	}
	return markup.HTML(b.String())
}

// Handler serves search results for GET and HEAD requests. The default body
// is an HTML <option> fragment; format=json or an application/json Accept
// header returns {"data": [...choices]} instead.
func Handler(opts ...Option) http.Handler {
	return HandlerWithConfig(NewConfig(opts...))
}

// HandlerWithConfig is Handler for a prepared Config.
func HandlerWithConfig(cfg Config) http.Handler {
	cfg = cfg.normalized()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if cfg.Guard != nil {
			if err := cfg.Guard(r); err != nil {
				code := http.StatusForbidden
				var statusErr StatusError
				if errors.As(err, &statusErr) {
					code = statusErr.StatusCode()
				}
				http.Error(w, http.StatusText(code), code)
				return
			}
		}

		zones, err := cfg.zones()
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		query := r.URL.Query()
		limit, _ := strconv.Atoi(query.Get(cfg.LimitParam))
		choices := SearchChoices(zones, query.Get(cfg.SearchParam), limit, cfg)

		if wantsJSON(r) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			if r.Method == http.MethodHead {
				return
			}
			_ = json.NewEncoder(w).Encode(choicesResponse{Data: choices})
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write([]byte(OptionsFragment(choices, query.Get(cfg.SelectedParam))))
	})
}

func wantsJSON(r *http.Request) bool {
	if r.URL.Query().Get("format") == "json" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
