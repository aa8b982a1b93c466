package locations

import (
	"github.com/scanlens/scanlens/internal/codefile"
	"github.com/scanlens/scanlens/internal/issue"
)

// Flow is an ordered sequence of reconciled locations describing one code
// path through the issue. Order and count always mirror the source flow.
type Flow struct {
	Locations []Location `json:"locations"`
}

func flowFromIssue(f issue.IssueFlow) Flow {
	out := Flow{Locations: make([]Location, 0, len(f.Locations))}
	for _, loc := range f.Locations {
		out.Locations = append(out.Locations, locationFromIssue(loc))
	}
	return out
}

func flowFromShowIssue(f issue.ShowIssueFlow, cache *codefile.Cache) Flow {
	out := Flow{Locations: make([]Location, 0, len(f.Locations))}
	for _, loc := range f.Locations {
		out.Locations = append(out.Locations, locationFromShowIssue(loc, cache))
	}
	return out
}

func flowFromTaint(f issue.TaintFlow, cache *codefile.Cache, workspaceFolderURI string) Flow {
	out := Flow{Locations: make([]Location, 0, len(f.Locations))}
	for _, loc := range f.Locations {
		out.Locations = append(out.Locations, locationFromTaint(loc, cache, workspaceFolderURI))
	}
	return out
}
