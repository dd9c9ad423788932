// Package fireconv converts between generic dynamic values and Firestore
// field values, and reads and writes Firestore documents through that
// conversion.
//
// Firestore has no arrays of arrays and has entities (timestamps, geo
// points, document references, sentinels) that a plain dynamic value cannot
// express. fireconv maps nested lists to "array-map-array" structures and
// those entities to special value maps, so both directions round-trip.
//
// # Basic Usage
//
// Write a document from YAML and read it back:
//
//	ctx := context.Background()
//
//	client, err := fireconv.New(ctx, "my-project", "(default)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	data, err := fireconv.LoadVariantFromYAML("city.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := client.Put(ctx, "cities/LA", data); err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := client.Get(ctx, "cities/LA")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Special Values
//
// A map with "special" set to true describes a Firestore entity:
//
//	founded:
//	  special: true
//	  type: timestamp
//	  seconds: 1700000000
//	  nanoseconds: 0
//	country:
//	  special: true
//	  type: document_reference
//	  document_path: countries/USA
//
// Supported types are timestamp, geo_point, document_reference, delete and
// server_timestamp. Nested lists appear on the Firestore side as maps of
// type nested_array holding the inner list under "value".
//
// # Offline Conversion
//
// Conversion does not need a connection:
//
//	conv := fireconv.NewConverter(fireconv.PathResolver{})
//	fv := conv.MustToFieldValue(data)
//
// # Applying Changes
//
// Compare a stored document against a desired state and write only what
// differs:
//
//	plan, err := client.GetApplyPlan(ctx, "cities/LA", data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, step := range plan.Steps {
//	    fmt.Println(step.Description)
//	}
//
//	if err := client.Apply(ctx, "cities/LA", data); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Failed document operations return [OperationError]; invalid documents
// return [ValidationError]. Conversion failures wrap [ErrNonStringKey] or
// [ErrUnsupportedFieldValue]:
//
//	var opErr *fireconv.OperationError
//	if errors.As(err, &opErr) {
//	    fmt.Printf("%s on %s failed: %v\n", opErr.Operation, opErr.Path, opErr.Cause)
//	}
//	if errors.Is(err, fireconv.ErrDocumentNotFound) {
//	    // ...
//	}
package fireconv
