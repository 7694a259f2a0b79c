package outline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/recidex/recidex/pkg/log"
	"github.com/recidex/recidex/pkg/models"
	"github.com/recidex/recidex/pkg/otelhelper"
)

// Record is one emitted entry of a recipe outline: the flat pre-order
// position, the dotted structural path and the component's rendered
// schemas. The dual numbering lets a reader locate a component both by
// absolute position and by nesting without re-walking the tree.
type Record struct {
	Global       int    // 1-based pre-order visitation index
	Path         string // Dotted 1-based sibling positions, trigger fixed at "1"
	Label        string // "T" for the recipe's trigger, the component name otherwise
	InputSchema  string // Rendered input schema
	OutputSchema string // Rendered output schema
}

// String renders the record in outline line format.
func (r Record) String() string {
	return fmt.Sprintf("(%d) %s: %s (input_schema=%s, output_schema=%s)",
		r.Global, r.Path, r.Label, r.InputSchema, r.OutputSchema)
}

// Outliner produces deterministic outlines of recipe trees. It is a pure
// reader over the tree and holds no per-recipe state, so a single Outliner
// can outline any number of recipes.
type Outliner struct {
	logger *slog.Logger
	tracer trace.Tracer
}

// NewOutliner creates an outliner.
func NewOutliner() *Outliner {
	return &Outliner{
		logger: log.WithModule("outline"),
		tracer: otel.Tracer("recidex/outline"),
	}
}

// walker carries the state of a single outline pass.
type walker struct {
	trigger   models.Component
	counter   int
	records   []Record
	ancestors map[models.Component]struct{}
}

// Records walks the recipe pre-order depth-first and returns one record per
// component: the trigger first at path "1", then each top-level action and
// its full subtree at paths "2", "3", ... in insertion order.
//
// The walk tracks the current ancestor path by component identity and fails
// with a CycleError if a component is revisited on its own ancestor path.
func (o *Outliner) Records(ctx context.Context, recipe *models.Recipe) ([]Record, error) {
	ctx, span := otelhelper.StartSpan(ctx, o.tracer, "outline.records",
		attribute.String(otelhelper.RecipeIDKey, recipe.ID()),
		attribute.String(otelhelper.RecipeNameKey, recipe.Name()),
	)
	defer span.End()

	w := &walker{
		trigger:   recipe.Trigger(),
		ancestors: make(map[models.Component]struct{}),
	}

	if err := w.visit(ctx, recipe.Trigger(), []int{1}); err != nil {
		otelhelper.SetError(span, err)

		return nil, err
	}

	// Top-level actions start at path index 2: the trigger conceptually
	// occupies position 1 even though it has no action siblings.
	for i, action := range recipe.Actions() {
		if err := w.visit(ctx, action, []int{i + 2}); err != nil {
			otelhelper.SetError(span, err)

			return nil, err
		}
	}

	span.SetAttributes(attribute.Int(otelhelper.ComponentCountKey, len(w.records)))
	o.logger.DebugContext(ctx, "Outlined recipe", "recipe", recipe.Name(), "components", len(w.records))

	return w.records, nil
}

// Outline writes the recipe header followed by one line per component to w.
func (o *Outliner) Outline(ctx context.Context, recipe *models.Recipe, w io.Writer) error {
	records, err := o.Records(ctx, recipe)
	if err != nil {
		return fmt.Errorf("failed to outline recipe %q: %w", recipe.Name(), err)
	}

	if _, err := fmt.Fprintf(w, "Recipe: %s\n", recipe.Name()); err != nil {
		return fmt.Errorf("failed to write outline header: %w", err)
	}

	for _, record := range records {
		if _, err := fmt.Fprintln(w, record.String()); err != nil {
			return fmt.Errorf("failed to write outline record: %w", err)
		}
	}

	return nil
}

func (w *walker) visit(ctx context.Context, component models.Component, path []int) error {
	pathLabel := joinPath(path)

	if _, onPath := w.ancestors[component]; onPath {
		return &CycleError{
			ComponentID:   component.ID(),
			ComponentName: component.Name(),
			Path:          pathLabel,
			Err:           ErrCycleDetected,
		}
	}

	w.counter++

	// The trigger is identified by reference, not by name: it renders as
	// "T" whatever its stored name is.
	label := component.Name()
	if component == w.trigger {
		label = "T"
	}

	w.records = append(w.records, Record{
		Global:       w.counter,
		Path:         pathLabel,
		Label:        label,
		InputSchema:  component.InputSchema().String(),
		OutputSchema: component.OutputSchema().String(),
	})

	w.ancestors[component] = struct{}{}
	defer delete(w.ancestors, component)

	for i, child := range component.Children() {
		childPath := append(append([]int{}, path...), i+1)
		if err := w.visit(ctx, child, childPath); err != nil {
			return err
		}
	}

	return nil
}

func joinPath(path []int) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = strconv.Itoa(p)
	}

	return strings.Join(parts, ".")
}
