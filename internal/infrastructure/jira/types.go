package jira

import "github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"

type workspaceResponse struct {
	Values []struct {
		WorkspaceID string `json:"workspaceId"`
	} `json:"values"`
}

type aqlRequest struct {
	QLQuery string `json:"qlQuery"`
}

type navlistRequest struct {
	ObjectTypeID      string `json:"objectTypeId"`
	IQL               string `json:"iql"`
	ResultPerPage     int    `json:"resultPerPage"`
	Page              int    `json:"page"`
	IncludeAttributes bool   `json:"includeAttributes"`
}

// aqlResponse covers both the AQL search page and the navlist answer,
// which names its list objectEntries.
type aqlResponse struct {
	StartAt       int          `json:"startAt"`
	MaxResults    int          `json:"maxResults"`
	Total         int          `json:"total"`
	IsLast        bool         `json:"isLast"`
	Values        []wireObject `json:"values"`
	ObjectEntries []wireObject `json:"objectEntries"`
}

func (r aqlResponse) objects() []jiraasset.Object {
	src := r.Values
	if len(src) == 0 {
		src = r.ObjectEntries
	}
	out := make([]jiraasset.Object, 0, len(src))
	for _, w := range src {
		out = append(out, w.toDomain())
	}
	return out
}

// wireObject is an asset as Jira sends it: the object type is nested.
type wireObject struct {
	ID           string                   `json:"id"`
	ObjectKey    string                   `json:"objectKey"`
	Label        string                   `json:"label"`
	ObjectTypeID string                   `json:"objectTypeId"`
	ObjectType   *jiraasset.ObjectTypeRef `json:"objectType"`
	Attributes   []jiraasset.Attribute    `json:"attributes"`
}

func (w wireObject) toDomain() jiraasset.Object {
	typeID := w.ObjectTypeID
	if typeID == "" && w.ObjectType != nil {
		typeID = w.ObjectType.ID
	}
	attrs := w.Attributes
	if attrs == nil {
		attrs = []jiraasset.Attribute{}
	}
	return jiraasset.Object{
		ID:           w.ID,
		ObjectKey:    w.ObjectKey,
		Label:        w.Label,
		ObjectTypeID: typeID,
		Attributes:   attrs,
	}
}
