// file: internals/features/documents/document/service/tree_service.go
package service

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	model "sukaza_backend/internals/features/documents/document/model"
)

// TreeFolder is a virtual grouping of documents. Folders are derived on
// read from the values present in the current document set; nothing is
// persisted and the documents themselves are never mutated.
type TreeFolder struct {
	Name      string                `json:"name"`
	RawValue  string                `json:"raw_value"`
	Documents []model.DocumentModel `json:"documents"`
}

// HumanizeFolderName turns a stored value like "property_management" into
// "Property Management".
func HumanizeFolderName(raw string) string {
	words := strings.Split(strings.ReplaceAll(raw, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		// first rune, not first byte; tags are free text and may be non-ASCII
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// GroupByContractType builds one folder per distinct contract_type value.
// Documents without a contract type land in an "Uncategorized" folder at
// the end.
func GroupByContractType(docs []model.DocumentModel) []TreeFolder {
	byType := map[string][]model.DocumentModel{}
	var uncategorized []model.DocumentModel
	for i := range docs {
		d := docs[i]
		if d.DocumentContractType == nil || *d.DocumentContractType == "" {
			uncategorized = append(uncategorized, d)
			continue
		}
		key := *d.DocumentContractType
		byType[key] = append(byType[key], d)
	}

	keys := make([]string, 0, len(byType))
	for k := range byType {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]TreeFolder, 0, len(keys)+1)
	for _, k := range keys {
		out = append(out, TreeFolder{
			Name:      HumanizeFolderName(k),
			RawValue:  k,
			Documents: byType[k],
		})
	}
	if len(uncategorized) > 0 {
		out = append(out, TreeFolder{
			Name:      "Uncategorized",
			RawValue:  "",
			Documents: uncategorized,
		})
	}
	return out
}

// GroupByTags builds one folder per distinct tag. A document carrying
// several tags appears under every matching folder; untagged documents
// land in "Untagged" at the end.
func GroupByTags(docs []model.DocumentModel) []TreeFolder {
	byTag := map[string][]model.DocumentModel{}
	var untagged []model.DocumentModel
	for i := range docs {
		d := docs[i]
		if len(d.DocumentTags) == 0 {
			untagged = append(untagged, d)
			continue
		}
		seen := map[string]bool{}
		for _, tag := range d.DocumentTags {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			byTag[tag] = append(byTag[tag], d)
		}
	}

	keys := make([]string, 0, len(byTag))
	for k := range byTag {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]TreeFolder, 0, len(keys)+1)
	for _, k := range keys {
		out = append(out, TreeFolder{
			Name:      HumanizeFolderName(k),
			RawValue:  k,
			Documents: byTag[k],
		})
	}
	if len(untagged) > 0 {
		out = append(out, TreeFolder{
			Name:      "Untagged",
			RawValue:  "",
			Documents: untagged,
		})
	}
	return out
}

// BuildTree picks the grouping per category: contracts group by
// contract_type, everything else by tags.
func BuildTree(docs []model.DocumentModel, category model.DocumentCategory) []TreeFolder {
	if category == model.DocContract {
		return GroupByContractType(docs)
	}
	return GroupByTags(docs)
}
