package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/m-mizutani/fireconv"
	"github.com/m-mizutani/fireconv/pkg/domain/field"
	"github.com/m-mizutani/fireconv/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func newValidateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check that a document file can be stored in Firestore",
		Flags: []cli.Flag{
			fileFlag(),
		},
		Action: runValidate,
	}
}

func runValidate(ctx context.Context, c *cli.Command) error {
	logger := getLogger(ctx)

	path := c.String("file")
	logger.Info("Reading document file", "path", path)

	doc, err := fireconv.LoadVariantFromYAML(path)
	if err != nil {
		return goerr.Wrap(err, "failed to load document")
	}

	if err := fireconv.ValidateDocument(doc); err != nil {
		return goerr.Wrap(err, "validation failed", goerr.V("path", path))
	}

	// Conversion does not need a database
	conv := fireconv.NewConverter(fireconv.PathResolver{}, fireconv.WithLogger(logger))
	fv, err := conv.ToFieldValue(doc)
	if err != nil {
		return goerr.Wrap(err, "conversion failed", goerr.V("path", path))
	}

	counts := map[string]int{}
	for _, v := range fv.MapValue() {
		countKinds(v, counts)
	}

	w := output(c)
	fmt.Fprintf(w, "✓ Document is valid (%d top-level fields)\n", len(fv.MapValue()))

	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-18s %d\n", k+":", counts[k])
	}

	return nil
}

// countKinds counts values by Firestore kind. Nested array wrappers are
// reported as "nested_array" instead of map.
func countKinds(v field.Value, counts map[string]int) {
	switch v.Kind() {
	case field.KindArray:
		counts[v.Kind().String()]++
		for _, item := range v.ArrayValue() {
			countKinds(item, counts)
		}
	case field.KindMap:
		fields := v.MapValue()
		if fields[usecase.SpecialKey].BooleanValue() && fields[usecase.TypeKey].StringValue() == usecase.SpecialNestedArray {
			counts[usecase.SpecialNestedArray]++
			for _, item := range fields[usecase.NestedValueKey].ArrayValue() {
				countKinds(item, counts)
			}
			return
		}
		counts[v.Kind().String()]++
		for _, item := range fields {
			countKinds(item, counts)
		}
	default:
		counts[v.Kind().String()]++
	}
}
