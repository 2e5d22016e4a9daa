package api

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/dmitrymomot/stuffkit/pkg/collection"
	"github.com/dmitrymomot/stuffkit/pkg/color"
	"github.com/dmitrymomot/stuffkit/pkg/logger"
	"github.com/dmitrymomot/stuffkit/pkg/textfield"
	"github.com/dmitrymomot/stuffkit/pkg/validator"
)

type handlers struct {
	log      *slog.Logger
	encoding string
}

// ChunkRequest is the body of POST /chunk.
type ChunkRequest struct {
	Items    []string `json:"items"`
	Capacity int      `json:"capacity"`
	Weight   string   `json:"weight,omitempty"`
	Strict   bool     `json:"strict,omitempty"`
}

// ChunkResult is the data of a successful POST /chunk.
type ChunkResult struct {
	Chunks [][]string `json:"chunks"`
	Count  int        `json:"count"`
}

func (h *handlers) chunk(w http.ResponseWriter, r *http.Request) {
	var req ChunkRequest
	if err := decode(r, &req); err != nil {
		fail(w, r, h.log, err)
		return
	}

	measure, err := collection.ParseMeasure(req.Weight)
	if err != nil {
		fail(w, r, h.log, err)
		return
	}
	weigh, err := collection.StringWeigher(measure, h.encoding)
	if err != nil {
		fail(w, r, h.log, err)
		return
	}

	split := collection.Chunked[string]
	if req.Strict {
		split = collection.ChunkedStrict[string]
	}
	chunks, err := split(req.Items, req.Capacity, weigh)
	if err != nil {
		fail(w, r, h.log, err)
		return
	}

	h.log.DebugContext(r.Context(), "chunked items",
		logger.Count(len(req.Items)),
		logger.Capacity(req.Capacity),
		slog.String("weight", string(measure)),
		slog.Int("chunks", len(chunks)),
	)
	ok(w, "chunked", ChunkResult{Chunks: chunks, Count: len(chunks)})
}

// ValidateRequest is the body of POST /validate.
type ValidateRequest struct {
	Text  string               `json:"text"`
	Rules []validator.RuleSpec `json:"rules"`
}

// ValidateResult reports the first failing rule, or a nil Error.
type ValidateResult struct {
	Valid bool    `json:"valid"`
	Error *string `json:"error"`
}

func (h *handlers) validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := decode(r, &req); err != nil {
		fail(w, r, h.log, err)
		return
	}

	rules, err := validator.BuildRules("text", req.Rules)
	if err != nil {
		fail(w, r, h.log, err)
		return
	}

	res := ValidateResult{Valid: true}
	if msg, failed := textfield.Messages(rules...).Evaluate(req.Text); failed {
		res = ValidateResult{Error: &msg}
	}
	ok(w, "validated", res)
}

// FormRequest is the body of POST /validate/form: named fields, each with
// its text and rule list.
type FormRequest struct {
	Fields map[string]ValidateRequest `json:"fields"`
}

// validateForm runs every field through a textfield.Field and answers 200
// when all pass, otherwise a validation_error with the messages per field.
func (h *handlers) validateForm(w http.ResponseWriter, r *http.Request) {
	var req FormRequest
	if err := decode(r, &req); err != nil {
		fail(w, r, h.log, err)
		return
	}

	form := textfield.NewForm[string]()
	names := make([]string, 0, len(req.Fields))
	for name := range req.Fields {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		spec := req.Fields[name]
		rules, err := validator.BuildRules(name, spec.Rules)
		if err != nil {
			fail(w, r, h.log, err)
			return
		}
		field := textfield.New(
			textfield.ChainPolicy(textfield.Messages(rules...)...),
			textfield.WithName[string](name),
			textfield.WithLogger[string](h.log),
			textfield.WithInitialText[string](spec.Text),
		)
		if err := form.Add(name, field); err != nil {
			fail(w, r, h.log, err)
			return
		}
	}

	if err := textfield.ValidateForm(form); err != nil {
		fail(w, r, h.log, err)
		return
	}
	ok(w, "validated", map[string]any{"valid": true, "fields": names})
}

// ColorResult describes a parsed color.
type ColorResult struct {
	Hex   string `json:"hex"`
	R     uint8  `json:"r"`
	G     uint8  `json:"g"`
	B     uint8  `json:"b"`
	Alpha uint8  `json:"alpha"`
	ARGB  uint32 `json:"argb"`
}

func (h *handlers) color(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get("value")
	c, err := color.ParseStrict(value)
	if err != nil {
		fail(w, r, h.log, err)
		return
	}
	red, green, blue := c.Channels()
	ok(w, "color", ColorResult{
		Hex:   c.Hex(),
		R:     red,
		G:     green,
		B:     blue,
		Alpha: c.Alpha(),
		ARGB:  uint32(c),
	})
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	ok(w, "alive", map[string]string{"status": "ok"})
}

func (h *handlers) notFound(w http.ResponseWriter, r *http.Request) {
	fail(w, r, h.log, ErrNotFound)
}

func (h *handlers) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	fail(w, r, h.log, ErrMethodNotAllowed)
}
