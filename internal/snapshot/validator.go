package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/imagepick/internal/config"
	"github.com/alexisbeaulieu97/imagepick/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/imagepick/internal/ports"
	apperrors "github.com/alexisbeaulieu97/imagepick/pkg/errors"
)

var errInvalidImage = errors.New("invalid image format")

// Validator normalizes host arguments. It never fails: unusable fields are
// treated as absent and skipped images are reported as diagnostics.
type Validator struct {
	logger    ports.Logger
	publisher ports.EventPublisher
	validate  *validator.Validate
}

// NewValidator creates a Validator. Both collaborators may be nil.
func NewValidator(logger ports.Logger, publisher ports.EventPublisher) *Validator {
	logger = logging.OrNoOp(logger)
	return &Validator{
		logger:    logger.With("component", "validator"),
		publisher: publisher,
		validate:  config.GetValidator(),
	}
}

// ParseArgs decodes a JSON object into the loosely typed argument map.
func ParseArgs(data []byte) (map[string]interface{}, error) {
	var args map[string]interface{}
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	return args, nil
}

// Normalize builds the Snapshot for one render cycle.
func (v *Validator) Normalize(ctx context.Context, args map[string]interface{}) Snapshot {
	snap := Snapshot{}

	snap.Label, _ = args[KeyLabel].(string)
	snap.Disabled, _ = args[KeyDisabled].(bool)
	if css, ok := args[KeyCustomCSS].(string); ok {
		snap.CustomCSS = &css
	}
	snap.Theme = v.theme(ctx, args[KeyTheme])

	form, rows := v.pickForm(ctx, args)
	snap.Form = form
	if form != FormNone {
		snap.Rows = v.rows(ctx, &snap, form.String(), rows)
	}

	if p, ok := v.pointer(args); ok {
		if _, exists := snap.Lookup(p); exists {
			snap.Selection = &p
		}
	}

	v.logger.Debug(ctx, "snapshot normalized",
		"form", snap.Form.String(),
		"rows", len(snap.Rows),
		"images", snap.ImageCount(),
		"diagnostics", len(snap.Diagnostics),
		"selection", snap.Selection != nil,
		"disabled", snap.Disabled,
	)
	return snap
}

// pickForm returns the row list to render. The flat images form wins when
// both are present; a value that is not a list counts as absent.
func (v *Validator) pickForm(ctx context.Context, args map[string]interface{}) (Form, []interface{}) {
	candidates := []struct {
		form Form
		key  string
	}{
		{FormFlat, KeyImages},
		{FormLabeled, KeyImagesRows},
	}

	for _, c := range candidates {
		raw, present := args[c.key]
		if !present || raw == nil {
			continue
		}
		list, ok := raw.([]interface{})
		if !ok {
			v.logger.Warn(ctx, "ignoring malformed row list", "field", c.key, "type", fmt.Sprintf("%T", raw))
			continue
		}
		return c.form, list
	}
	return FormNone, nil
}

func (v *Validator) rows(ctx context.Context, snap *Snapshot, field string, list []interface{}) []Row {
	if len(list) > 0 && !containsObject(list) {
		// Legacy flat form: the whole list is a single row of references.
		return []Row{v.row(ctx, snap, field, 0, map[string]interface{}{keyRowImages: list})}
	}

	rows := make([]Row, 0, len(list))
	for i, entry := range list {
		obj, ok := entry.(map[string]interface{})
		if !ok {
			v.logger.Error(ctx, "invalid row format", "field", field, "row", i, "value", fmt.Sprintf("%v", entry))
			continue
		}
		rows = append(rows, v.row(ctx, snap, field, i, obj))
	}
	return rows
}

func (v *Validator) row(ctx context.Context, snap *Snapshot, field string, index int, obj map[string]interface{}) Row {
	row := Row{Index: index}
	row.VerticalLabel, _ = obj[keyRowLabel].(string)

	entries, ok := obj[keyRowImages].([]interface{})
	if !ok {
		if raw, present := obj[keyRowImages]; present && raw != nil {
			v.logger.Warn(ctx, "row images is not a list", "field", field, "row", index)
		}
		return row
	}
	captions, _ := obj[keyRowCaptions].([]interface{})
	tooltips, _ := obj[keyRowTooltips].([]interface{})

	row.Images = make([]Image, 0, len(entries))
	for col, entry := range entries {
		src, ok := entry.(string)
		if !ok {
			v.reportInvalid(ctx, snap, field, index, col, entry)
			continue
		}
		row.Images = append(row.Images, Image{
			Column:  col,
			Src:     src,
			Caption: stringAt(captions, col),
			Tooltip: stringAt(tooltips, col),
		})
	}
	return row
}

func (v *Validator) reportInvalid(ctx context.Context, snap *Snapshot, field string, row, col int, value interface{}) {
	path := fmt.Sprintf("%s[%d].images[%d]", field, row, col)
	err := apperrors.NewValidationError(path, errInvalidImage.Error(), errInvalidImage)
	snap.Diagnostics = append(snap.Diagnostics, Diagnostic{Row: row, Column: col, Value: value, Err: err})

	v.logger.Error(ctx, "invalid image format",
		"field", path,
		"row", row,
		"column", col,
		"value", fmt.Sprintf("%v", value),
	)
	if v.publisher != nil {
		_ = v.publisher.Publish(ctx, ports.Event{
			Type:   ports.EventImageInvalid,
			Fields: map[string]interface{}{"row": row, "column": col},
		})
	}
}

func (v *Validator) theme(ctx context.Context, raw interface{}) *Theme {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}

	theme := Theme{}
	theme.Font, _ = obj["font"].(string)
	theme.TextColor, _ = obj["textColor"].(string)
	base, _ := obj["base"].(string)
	theme.Base = Base(base)

	if err := v.validate.Struct(theme); err != nil {
		v.logger.Warn(ctx, "unknown theme base, using light", "base", base)
		theme.Base = ""
	}
	if theme.Base == "" {
		theme.Base = BaseLight
	}
	return &theme
}

// pointer reads the selection pointer. index may be the nested
// {rowIndex, index} object or a bare column number paired with
// selected_row_index.
func (v *Validator) pointer(args map[string]interface{}) (Pointer, bool) {
	var p Pointer
	switch raw := args[KeyIndex].(type) {
	case map[string]interface{}:
		row, okRow := asInt(raw["rowIndex"])
		col, okCol := asInt(raw["index"])
		if !okRow || !okCol {
			return Pointer{}, false
		}
		p = Pointer{Row: row, Image: col}
	case nil:
		return Pointer{}, false
	default:
		col, ok := asInt(raw)
		if !ok {
			return Pointer{}, false
		}
		row := 0
		if rawRow, present := args[KeySelectedRowIndex]; present {
			if row, ok = asInt(rawRow); !ok {
				return Pointer{}, false
			}
		}
		p = Pointer{Row: row, Image: col}
	}

	if err := v.validate.Struct(p); err != nil {
		return Pointer{}, false
	}
	return p, true
}

func asInt(raw interface{}) (int, bool) {
	switch n := raw.(type) {
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

func stringAt(values []interface{}, i int) string {
	if i < 0 || i >= len(values) {
		return ""
	}
	s, _ := values[i].(string)
	return s
}

func containsObject(list []interface{}) bool {
	for _, entry := range list {
		if _, ok := entry.(map[string]interface{}); ok {
			return true
		}
	}
	return false
}
