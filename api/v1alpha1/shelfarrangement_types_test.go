package v1alpha1

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

// helper: build a valid ShelfArrangement document
func makeValidArrangement() *ShelfArrangement {
	return &ShelfArrangement{
		TypeMeta: TypeMeta(),
		ObjectMeta: metav1.ObjectMeta{
			Name: "arrangement-sample",
			UID:  "3f1c9d4e-8a7b-4c2d-9e1f-0a1b2c3d4e5f",
			Labels: map[string]string{
				"app.kubernetes.io/name": "shelf-optimizer",
			},
		},
		Spec: ShelfArrangementSpec{
			Catalog:  "books.json",
			Shelves:  2,
			Capacity: ShelfCapacity{WidthMM: 800, WeightGrams: 10000},
			Strategy: "annealing",
			Seed:     42,
			Weights:  PenaltyWeights{Space: "50", Variance: "20", Adjacency: "10"},
		},
		Status: ShelfArrangementStatus{
			Shelves: []Shelf{
				{
					Index: 1, WidthMM: 60, WeightGrams: 700,
					Books: []Book{
						{Title: "Dune", Author: "Frank Herbert", WidthMM: 36, WeightGrams: 420, Extra: map[string]string{"URL": "u"}},
						{Title: "Emma", Author: "Jane Austen", WidthMM: 24, WeightGrams: 280},
					},
				},
				{Index: 2},
			},
			Cost:        PenaltyBreakdown{Space: "1540", Variance: "245000", Adjacency: "0", Total: "4977000"},
			Search:      SearchStatus{InitialCost: "5000000", Rounds: 269, Accepted: 100, Rejected: 150, Infeasible: 19, Restarts: 1},
			LastRunTime: metav1.NewTime(time.Unix(1730000000, 0).UTC()),
			Conditions: []metav1.Condition{{
				Type:               TypeArrangementValid,
				Status:             metav1.ConditionTrue,
				Reason:             ReasonConstraintsSatisfied,
				LastTransitionTime: metav1.NewTime(time.Unix(1730000000, 0).UTC()),
			}},
		},
	}
}

func TestSchemeRegistration(t *testing.T) {
	s := runtime.NewScheme()
	if err := AddToScheme(s); err != nil {
		t.Fatalf("AddToScheme failed: %v", err)
	}

	kinds, _, err := s.ObjectKinds(&ShelfArrangement{})
	if err != nil {
		t.Fatalf("ObjectKinds for ShelfArrangement failed: %v", err)
	}
	if len(kinds) == 0 || kinds[0].Kind != KindShelfArrangement || kinds[0].GroupVersion() != GroupVersion {
		t.Fatalf("unexpected GVK registered for ShelfArrangement: %v", kinds)
	}

	listKinds, _, err := s.ObjectKinds(&ShelfArrangementList{})
	if err != nil {
		t.Fatalf("ObjectKinds for ShelfArrangementList failed: %v", err)
	}
	if len(listKinds) == 0 {
		t.Fatalf("no GVK registered for ShelfArrangementList")
	}
}

func TestDeepCopyIndependence(t *testing.T) {
	orig := makeValidArrangement()
	cp := orig.DeepCopy()

	cp.Spec.Shelves = 9
	cp.Status.Shelves[0].Books[0].Title = "changed"
	cp.Status.Shelves[0].Books[0].Extra["URL"] = "changed"
	cp.Status.Conditions[0].Reason = ReasonCapacityExceeded
	cp.Labels["app.kubernetes.io/name"] = "changed"

	if orig.Spec.Shelves == cp.Spec.Shelves {
		t.Errorf("DeepCopy did not create independent copy for Spec.Shelves")
	}
	if orig.Status.Shelves[0].Books[0].Title == cp.Status.Shelves[0].Books[0].Title {
		t.Errorf("DeepCopy did not create independent copy for Status.Shelves")
	}
	if orig.Status.Shelves[0].Books[0].Extra["URL"] == cp.Status.Shelves[0].Books[0].Extra["URL"] {
		t.Errorf("DeepCopy did not create independent copy for Book.Extra")
	}
	if orig.Status.Conditions[0].Reason == cp.Status.Conditions[0].Reason {
		t.Errorf("DeepCopy did not create independent copy for Status.Conditions")
	}
	if orig.Labels["app.kubernetes.io/name"] == cp.Labels["app.kubernetes.io/name"] {
		t.Errorf("DeepCopy did not create independent copy for ObjectMeta.Labels")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	orig := makeValidArrangement()

	b, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var back ShelfArrangement
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	ot := orig.Status.LastRunTime.Time
	bt := back.Status.LastRunTime.Time
	if !ot.Equal(bt) {
		t.Fatalf("LastRunTime mismatch by instant: orig=%v back=%v", ot, bt)
	}
	back.Status.LastRunTime = orig.Status.LastRunTime
	back.Status.Conditions[0].LastTransitionTime = orig.Status.Conditions[0].LastTransitionTime

	if !reflect.DeepEqual(orig, &back) {
		t.Errorf("round-trip mismatch:\norig=%#v\nback=%#v", orig, &back)
	}
}

func TestListDeepCopyAndItemsIndependence(t *testing.T) {
	a1 := makeValidArrangement()
	a2 := makeValidArrangement()
	a2.Name = "arrangement-other"
	list := &ShelfArrangementList{
		Items: []ShelfArrangement{*a1, *a2},
	}

	cp := list.DeepCopy()
	if len(cp.Items) != 2 {
		t.Fatalf("DeepCopy list items count mismatch: got %d", len(cp.Items))
	}
	// mutate copy
	cp.Items[0].Spec.Strategy = "changed"

	if list.Items[0].Spec.Strategy == cp.Items[0].Spec.Strategy {
		t.Errorf("DeepCopy did not isolate list items")
	}
}

func TestDroppedOmitEmpty(t *testing.T) {
	doc := makeValidArrangement()
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var probe struct {
		Status map[string]any `json:"status"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		t.Fatalf("unmarshal probe failed: %v", err)
	}
	if _, ok := probe.Status["dropped"]; ok {
		t.Errorf("expected dropped to be omitted when empty, got: %s", string(b))
	}
	if _, ok := probe.Status["shelves"]; !ok {
		t.Errorf("expected shelves to be present, got: %s", string(b))
	}
}
