// file: internals/features/documents/document/service/tree_service_test.go
package service_test

import (
	"testing"

	"github.com/lib/pq"

	model "sukaza_backend/internals/features/documents/document/model"
	"sukaza_backend/internals/features/documents/document/service"
)

func doc(name string, tags ...string) model.DocumentModel {
	return model.DocumentModel{
		DocumentFileName: name,
		DocumentTags:     pq.StringArray(tags),
	}
}

func contractDoc(name, contractType string) model.DocumentModel {
	d := model.DocumentModel{DocumentFileName: name, DocumentCategory: model.DocContract}
	if contractType != "" {
		d.DocumentContractType = &contractType
	}
	return d
}

func folderNames(folders []service.TreeFolder) []string {
	out := make([]string, 0, len(folders))
	for _, f := range folders {
		out = append(out, f.Name)
	}
	return out
}

func TestGroupByTagsMultiMembership(t *testing.T) {
	docs := []model.DocumentModel{
		doc("both.pdf", "a", "b"),
		doc("only-a.pdf", "a"),
	}

	folders := service.GroupByTags(docs)
	if len(folders) != 2 {
		t.Fatalf("expected folders [A B], got %v", folderNames(folders))
	}
	if folders[0].Name != "A" || folders[1].Name != "B" {
		t.Fatalf("folders not alphabetical: %v", folderNames(folders))
	}

	hasDoc := func(f service.TreeFolder, name string) bool {
		for _, d := range f.Documents {
			if d.DocumentFileName == name {
				return true
			}
		}
		return false
	}
	if !hasDoc(folders[0], "both.pdf") || !hasDoc(folders[1], "both.pdf") {
		t.Fatal("a document tagged [a b] must appear under both folders")
	}
	if !hasDoc(folders[0], "only-a.pdf") || hasDoc(folders[1], "only-a.pdf") {
		t.Fatal("single-tag document leaked into the wrong folder")
	}
}

func TestGroupByTagsUntaggedBucket(t *testing.T) {
	docs := []model.DocumentModel{
		doc("tagged.pdf", "zeta"),
		doc("plain.pdf"),
	}

	folders := service.GroupByTags(docs)
	if len(folders) != 2 {
		t.Fatalf("expected 2 folders, got %v", folderNames(folders))
	}
	last := folders[len(folders)-1]
	if last.Name != "Untagged" || len(last.Documents) != 1 {
		t.Fatalf("untagged bucket wrong: %v", folderNames(folders))
	}
}

func TestGroupByTagsDuplicateTagCountsOnce(t *testing.T) {
	docs := []model.DocumentModel{doc("dup.pdf", "a", "a")}

	folders := service.GroupByTags(docs)
	if len(folders) != 1 || len(folders[0].Documents) != 1 {
		t.Fatalf("duplicate tag must not duplicate the document: %+v", folders)
	}
}

func TestGroupByContractTypeHumanizesNames(t *testing.T) {
	docs := []model.DocumentModel{
		contractDoc("mgmt.pdf", "property_management"),
		contractDoc("lease.pdf", "lease_agreement"),
		contractDoc("loose.pdf", ""),
	}

	folders := service.GroupByContractType(docs)
	if len(folders) != 3 {
		t.Fatalf("expected 3 folders, got %v", folderNames(folders))
	}
	if folders[0].Name != "Lease Agreement" || folders[1].Name != "Property Management" {
		t.Fatalf("humanized names wrong or unsorted: %v", folderNames(folders))
	}
	if folders[2].Name != "Uncategorized" {
		t.Fatalf("missing uncategorized bucket: %v", folderNames(folders))
	}
}

func TestGroupingDoesNotMutateInput(t *testing.T) {
	docs := []model.DocumentModel{doc("both.pdf", "a", "b")}
	service.GroupByTags(docs)

	if len(docs[0].DocumentTags) != 2 || docs[0].DocumentTags[0] != "a" || docs[0].DocumentTags[1] != "b" {
		t.Fatalf("grouping mutated the input tags: %v", docs[0].DocumentTags)
	}
}

func TestHumanizeFolderName(t *testing.T) {
	cases := map[string]string{
		"property_management": "Property Management",
		"coi":                 "Coi",
		"lease agreement":     "Lease Agreement",
		"études_notariales":   "Études Notariales", // first rune may be multi-byte
	}
	for in, want := range cases {
		if got := service.HumanizeFolderName(in); got != want {
			t.Fatalf("HumanizeFolderName(%q) = %q, want %q", in, got, want)
		}
	}
}
