package locations

import (
	"time"

	"github.com/scanlens/scanlens/internal/codefile"
	"github.com/scanlens/scanlens/internal/issue"
)

// CommandID identifies the editor command this payload is built for.
const CommandID = "scanlens.showAllLocations"

// Param is the full "show all locations" payload handed to the editor
// transport for serialization. ConnectionID and CreationDate are omitted
// when the source shape does not supply them; downstream consumers branch on
// their presence. The root CodeMatches is only ever computed for the
// remote-protocol shape.
type Param struct {
	FileURI      string           `json:"fileUri"`
	Message      string           `json:"message"`
	Severity     string           `json:"severity"`
	RuleKey      string           `json:"ruleKey"`
	Flows        []Flow           `json:"flows"`
	ConnectionID string           `json:"connectionId,omitempty"`
	CreationDate string           `json:"creationDate,omitempty"`
	TextRange    *issue.TextRange `json:"textRange,omitempty"`
	CodeMatches  bool             `json:"codeMatches"`
}

// ParamsFromIssue builds the display payload for a live-analysis issue.
// Severity and rule key come straight from the engine; no drift comparison
// happens on this path because the engine read the files moments ago.
func ParamsFromIssue(iss *issue.Issue) Param {
	p := Param{
		Message:   iss.Message,
		Severity:  iss.Severity,
		RuleKey:   iss.RuleKey,
		TextRange: iss.TextRange,
		Flows:     make([]Flow, 0, len(iss.Flows)),
	}
	if iss.InputFile != nil {
		p.FileURI = iss.InputFile.URI()
	}
	for _, f := range iss.Flows {
		p.Flows = append(p.Flows, flowFromIssue(f))
	}
	return p
}

// ParamsFromShowIssue builds the display payload for a remote "show issue"
// request. This is the only shape that computes the root-level CodeMatches:
// the embedded snippet is compared against the file's current content, using
// the whole file when the root range is the whole-file sentinel. Any failure
// to read or extract degrades to CodeMatches=false.
//
// A nil cache is replaced by a fresh request-scoped one; callers batching
// several issues over the same files should pass a shared cache.
func ParamsFromShowIssue(req *issue.ShowIssueRequest, connectionID string, cache *codefile.Cache) Param {
	if cache == nil {
		cache = codefile.NewCache()
	}

	p := Param{
		FileURI:      codefile.PathToURI(req.IdeFilePath),
		Message:      req.Message,
		Severity:     "", // not supplied by this source
		RuleKey:      req.RuleKey,
		TextRange:    req.TextRange,
		ConnectionID: connectionID,
		CreationDate: req.CreationDate,
		Flows:        make([]Flow, 0, len(req.Flows)),
	}
	for _, f := range req.Flows {
		p.Flows = append(p.Flows, flowFromShowIssue(f, cache))
	}

	if localCode, ok := cache.Get(p.FileURI).CodeAt(req.TextRange); ok {
		p.CodeMatches = req.CodeSnippet == localCode
	}
	return p
}

// ParamsFromTaint builds the display payload for a taint vulnerability
// record. The file identity is the workspace folder URI joined with the
// record's relative path, and the creation date is the introduction
// timestamp in ISO-8601 UTC. The root CodeMatches is intentionally left at
// its default here; only flow locations carry per-location match flags for
// this shape.
func ParamsFromTaint(taint *issue.TaintVulnerability, connectionID string, cache *codefile.Cache) Param {
	if cache == nil {
		cache = codefile.NewCache()
	}

	p := Param{
		FileURI:      codefile.JoinURI(taint.WorkspaceFolderURI, taint.IdeFilePath),
		Message:      taint.Message,
		Severity:     taint.Severity,
		RuleKey:      taint.RuleKey,
		ConnectionID: connectionID,
		CreationDate: taint.IntroductionDate.UTC().Format(time.RFC3339),
		Flows:        make([]Flow, 0, len(taint.Flows)),
	}
	if taint.TextRange != nil {
		rng := taint.TextRange.TextRange
		p.TextRange = &rng
	}
	for _, f := range taint.Flows {
		p.Flows = append(p.Flows, flowFromTaint(f, cache, taint.WorkspaceFolderURI))
	}
	return p
}
