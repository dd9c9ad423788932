package firestore_test

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/go-cmp/cmp"
	adapter "github.com/m-mizutani/fireconv/pkg/adapter/firestore"
	"github.com/m-mizutani/fireconv/pkg/domain/field"
	"github.com/m-mizutani/fireconv/pkg/domain/model"
	"github.com/m-mizutani/gt"
	"google.golang.org/genproto/googleapis/type/latlng"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const testRoot = "projects/test-project/databases/(default)/documents/"

// testDoc builds references the way the Firestore client does, without a
// connection
func testDoc(path string) *firestore.DocumentRef {
	return &firestore.DocumentRef{Path: testRoot + path}
}

type pathRef string

func (p pathRef) Path() string { return string(p) }

func TestToNative(t *testing.T) {
	t.Run("Primitives", func(t *testing.T) {
		for _, tc := range []struct {
			name  string
			input field.Value
			want  any
		}{
			{"null", field.Null(), nil},
			{"boolean", field.Boolean(true), true},
			{"integer", field.Integer(42), int64(42)},
			{"double", field.Double(3.5), 3.5},
			{"string", field.String("abc"), "abc"},
		} {
			t.Run(tc.name, func(t *testing.T) {
				got, err := adapter.ToNative(tc.input, testDoc)
				gt.NoError(t, err)
				gt.Equal(t, got, tc.want)
			})
		}
	})

	t.Run("Containers", func(t *testing.T) {
		input := field.Map(map[string]field.Value{
			"tags": field.Array(field.String("a"), field.Integer(1)),
			"nested": field.Map(map[string]field.Value{
				"blob": field.Blob([]byte{1, 2, 3}),
			}),
		})

		got, err := adapter.ToNative(input, testDoc)
		gt.NoError(t, err)

		want := map[string]any{
			"tags": []any{"a", int64(1)},
			"nested": map[string]any{
				"blob": []byte{1, 2, 3},
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("unexpected native value (-want +got):\n%s", diff)
		}
	})

	t.Run("Firestore entities", func(t *testing.T) {
		ts, err := adapter.ToNative(field.FromTimestamp(field.Timestamp{Seconds: 123, Nanoseconds: 456}), testDoc)
		gt.NoError(t, err)
		gt.Equal(t, ts.(time.Time).Unix(), int64(123))
		gt.Equal(t, ts.(time.Time).Nanosecond(), 456)

		gp, err := adapter.ToNative(field.FromGeoPoint(field.GeoPoint{Latitude: 43, Longitude: 80}), testDoc)
		gt.NoError(t, err)
		gt.Equal(t, gp.(*latlng.LatLng).GetLatitude(), 43.0)
		gt.Equal(t, gp.(*latlng.LatLng).GetLongitude(), 80.0)

		ref, err := adapter.ToNative(field.Reference(pathRef("foo/bar")), testDoc)
		gt.NoError(t, err)
		gt.Equal(t, ref.(*firestore.DocumentRef).Path, testRoot+"foo/bar")
	})

	t.Run("Reference created by the adapter keeps its native ref", func(t *testing.T) {
		native := testDoc("cities/SF")
		ref := adapter.NewDocumentRef(native)
		gt.Equal(t, ref.Path(), "cities/SF")

		got, err := adapter.ToNative(field.Reference(ref), func(string) *firestore.DocumentRef {
			t.Error("resolver must not be called")
			return nil
		})
		gt.NoError(t, err)
		gt.True(t, got.(*firestore.DocumentRef) == native)
	})

	t.Run("Sentinels", func(t *testing.T) {
		del, err := adapter.ToNative(field.Delete(), testDoc)
		gt.NoError(t, err)
		gt.True(t, del == any(firestore.Delete))

		st, err := adapter.ToNative(field.ServerTimestamp(), testDoc)
		gt.NoError(t, err)
		gt.True(t, st == any(firestore.ServerTimestamp))
	})

	t.Run("Merge-only operations", func(t *testing.T) {
		for _, v := range []field.Value{
			field.ArrayUnion(field.String("a")),
			field.ArrayRemove(field.Integer(1)),
			field.IncrementInteger(1),
			field.IncrementDouble(0.5),
		} {
			got, err := adapter.ToNative(v, testDoc)
			gt.NoError(t, err)
			gt.V(t, got).NotNil()
		}
	})

	t.Run("Invalid reference path", func(t *testing.T) {
		_, err := adapter.ToNative(field.Reference(pathRef("foo")), func(string) *firestore.DocumentRef {
			return nil
		})
		gt.Error(t, err)
	})
}

func TestFromNative(t *testing.T) {
	t.Run("Document data", func(t *testing.T) {
		now := time.Date(2024, 1, 2, 3, 4, 5, 6000, time.UTC)
		data := map[string]any{
			"name":     "Los Angeles",
			"capital":  false,
			"pop":      int64(3900000),
			"area":     1302.0,
			"raw":      []byte("xyz"),
			"nothing":  nil,
			"founded":  now,
			"location": &latlng.LatLng{Latitude: 34.05, Longitude: -118.24},
			"state":    testDoc("states/CA"),
			"regions":  []any{"west_coast", "socal"},
			"meta":     map[string]any{"tier": int64(1)},
		}

		got, err := adapter.FromNativeMap(data)
		gt.NoError(t, err)

		want := map[string]field.Value{
			"name":     field.String("Los Angeles"),
			"capital":  field.Boolean(false),
			"pop":      field.Integer(3900000),
			"area":     field.Double(1302.0),
			"raw":      field.Blob([]byte("xyz")),
			"nothing":  field.Null(),
			"founded":  field.FromTime(now),
			"location": field.FromGeoPoint(field.GeoPoint{Latitude: 34.05, Longitude: -118.24}),
			"state":    field.Reference(pathRef("states/CA")),
			"regions":  field.Array(field.String("west_coast"), field.String("socal")),
			"meta":     field.Map(map[string]field.Value{"tier": field.Integer(1)}),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("unexpected fields (-want +got):\n%s", diff)
		}
	})

	t.Run("Round trip through native form", func(t *testing.T) {
		original := field.Map(map[string]field.Value{
			"ts":  field.FromTimestamp(field.Timestamp{Seconds: 1700000000, Nanoseconds: 123000}),
			"geo": field.FromGeoPoint(field.GeoPoint{Latitude: 1.5, Longitude: 2.5}),
			"ref": field.Reference(pathRef("a/b/c/d")),
			"arr": field.Array(field.Null(), field.Boolean(true)),
		})

		native, err := adapter.ToNative(original, testDoc)
		gt.NoError(t, err)
		back, err := adapter.FromNative(native)
		gt.NoError(t, err)
		gt.True(t, back.Equal(original))
	})

	t.Run("Unsupported Go type", func(t *testing.T) {
		_, err := adapter.FromNative(struct{}{})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrUnknownKind))
	})
}

func TestRelativePath(t *testing.T) {
	gt.Equal(t, adapter.RelativePath(testDoc("users/frank")), "users/frank")
	gt.Equal(t, adapter.RelativePath(&firestore.DocumentRef{Path: "users/frank"}), "users/frank")
	gt.Equal(t, adapter.RelativePath(nil), "")
}

func TestReadRetryer(t *testing.T) {
	t.Run("Retries transient errors a bounded number of times", func(t *testing.T) {
		retryer := adapter.NewReadRetryer()
		unavailable := status.Error(codes.Unavailable, "try again")

		retries := 0
		for {
			_, ok := retryer.Retry(unavailable)
			if !ok {
				break
			}
			retries++
			if retries > 10 {
				t.Fatal("retryer never gave up")
			}
		}
		gt.Equal(t, retries, 3)
	})

	t.Run("Does not retry NotFound", func(t *testing.T) {
		retryer := adapter.NewReadRetryer()
		_, ok := retryer.Retry(status.Error(codes.NotFound, "missing"))
		gt.False(t, ok)
	})
}
