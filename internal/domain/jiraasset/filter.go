package jiraasset

import (
	"strings"

	"github.com/GithubESPI/dotationsFrontend/internal/shared/textutil"
)

// FilterAssets keeps the assets whose mapped serial number, brand, model, internal id
// or object key contain query, ignoring case and accents. With a nil mapping every
// attribute value is searched. A blank query keeps everything.
func FilterAssets(assets []Object, query string, mapping *AttributeMapping) []Object {
	if strings.TrimSpace(query) == "" {
		return assets
	}

	needle := textutil.Fold(query)
	matches := func(s string) bool {
		return s != "" && strings.Contains(textutil.Fold(s), needle)
	}

	out := make([]Object, 0, len(assets))
	for i := range assets {
		asset := &assets[i]
		if matchesAsset(asset, mapping, matches) {
			out = append(out, *asset)
		}
	}
	return out
}

func matchesAsset(asset *Object, mapping *AttributeMapping, matches func(string) bool) bool {
	if mapping != nil {
		for _, attrID := range []string{
			mapping.SerialNumberAttrID,
			mapping.BrandAttrID,
			mapping.ModelAttrID,
			mapping.InternalIDAttrID,
		} {
			if v, ok := AttributeValue(asset, attrID); ok && matches(v) {
				return true
			}
		}
	}

	if matches(asset.ObjectKey) {
		return true
	}

	if mapping == nil {
		for _, attr := range AvailableAttributes(asset) {
			if matches(attr.Value) {
				return true
			}
		}
	}
	return false
}
