//+build integration

package integration

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/wharflab/semvet/internal/file"
	"github.com/wharflab/semvet/semvet"
	"github.com/wharflab/semvet/semvet/presenter"
	jsonPresenter "github.com/wharflab/semvet/semvet/presenter/json"
	"github.com/wharflab/semvet/semvet/semver"
)

func parseVersions(t *testing.T, candidates []string) []semver.Version {
	t.Helper()
	versions := make([]semver.Version, 0, len(candidates))
	for _, candidate := range candidates {
		v, err := semver.Parse(candidate)
		if err != nil {
			t.Fatalf("unable to parse version %q: %+v", candidate, err)
		}
		versions = append(versions, v)
	}
	return versions
}

func TestEvaluationPipeline(t *testing.T) {
	constraint, err := semver.ParseConstraint(">=1.2.3, <2")
	if err != nil {
		t.Fatalf("unable to parse requirement: %+v", err)
	}

	candidates, err := file.ReadLines(afero.NewOsFs(), filepath.Join("test-fixtures", "versions.txt"))
	if err != nil {
		t.Fatalf("unable to read candidate versions: %+v", err)
	}

	evaluations := semvet.CheckAll(constraint, parseVersions(t, candidates)...)

	if evaluations.Count() != 5 {
		t.Fatalf("unexpected evaluation count: %d != %d", evaluations.Count(), 5)
	}
	if evaluations.SatisfiedCount() != 2 {
		t.Errorf("unexpected satisfied count: %d != %d", evaluations.SatisfiedCount(), 2)
	}
	if evaluations.UnsatisfiedCount() != 3 {
		t.Errorf("unexpected unsatisfied count: %d != %d", evaluations.UnsatisfiedCount(), 3)
	}
	if evaluations.AllSatisfied() {
		t.Errorf("expected at least one unsatisfied version")
	}

	expectedVerdicts := map[string]bool{
		"1.2.3":         true,
		"1.9.0":         true,
		"2.0.0":         false,
		"1.2.3-alpha.1": false,
		"1.2.2":         false,
	}
	for e := range evaluations.Enumerate() {
		expected, ok := expectedVerdicts[e.Version.String()]
		if !ok {
			t.Errorf("unexpected version evaluated: %q", e.Version.String())
			continue
		}
		if e.Satisfied != expected {
			t.Errorf("unexpected verdict for %q: %t != %t", e.Version.String(), e.Satisfied, expected)
		}
	}
}

func TestEvaluationPipelineJSONReport(t *testing.T) {
	constraint, err := semver.ParseConstraint(">=1.2.3, <2")
	if err != nil {
		t.Fatalf("unable to parse requirement: %+v", err)
	}

	evaluations := semvet.CheckAll(constraint, parseVersions(t, []string{"1.2.3", "2.0.0"})...)

	pres := presenter.GetPresenter(presenter.JSONPresenter, false)
	if pres == nil {
		t.Fatalf("unable to get JSON presenter")
	}

	var buf bytes.Buffer
	if err := pres.Present(&buf, evaluations); err != nil {
		t.Fatalf("unable to present report: %+v", err)
	}

	var doc jsonPresenter.Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unable to decode report: %+v", err)
	}

	if len(doc.Items) != 2 {
		t.Fatalf("unexpected item count: %d != %d", len(doc.Items), 2)
	}
	if doc.Items[0].Version != "1.2.3" || !doc.Items[0].Satisfied {
		t.Errorf("unexpected first item: %+v", doc.Items[0])
	}
	if doc.Items[1].Version != "2.0.0" || doc.Items[1].Satisfied {
		t.Errorf("unexpected second item: %+v", doc.Items[1])
	}
	if doc.Summary.Total != 2 || doc.Summary.Satisfied != 1 || doc.Summary.Unsatisfied != 1 {
		t.Errorf("unexpected summary: %+v", doc.Summary)
	}
	if len(doc.Summary.Constraints) != 1 || doc.Summary.Constraints[0] != ">=1.2.3, <2" {
		t.Errorf("unexpected summary constraints: %+v", doc.Summary.Constraints)
	}
	if doc.Descriptor.Name != "semvet" {
		t.Errorf("unexpected descriptor name: %q", doc.Descriptor.Name)
	}
}

func TestEvaluationPipelineTableReport(t *testing.T) {
	constraint, err := semver.ParseConstraint("~0.3")
	if err != nil {
		t.Fatalf("unable to parse requirement: %+v", err)
	}

	evaluations := semvet.CheckAll(constraint, parseVersions(t, []string{"0.3.1", "0.4.0"})...)

	pres := presenter.GetPresenter(presenter.TablePresenter, false)
	if pres == nil {
		t.Fatalf("unable to get table presenter")
	}

	var buf bytes.Buffer
	if err := pres.Present(&buf, evaluations); err != nil {
		t.Fatalf("unable to present report: %+v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("unexpected line count: %d != %d\n%s", len(lines), 3, buf.String())
	}

	expectedRows := []struct {
		version string
		verdict string
	}{
		{"0.3.1", "yes"},
		{"0.4.0", "no"},
	}
	for idx, row := range expectedRows {
		line := lines[idx+1]
		if !strings.Contains(line, row.version) {
			t.Errorf("row %d missing version %q: %q", idx, row.version, line)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[len(fields)-1] != row.verdict {
			t.Errorf("row %d missing verdict %q: %q", idx, row.verdict, line)
		}
	}
}
