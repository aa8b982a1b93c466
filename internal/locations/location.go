// Package locations reconciles recorded issue locations against the current
// on-disk state of the referenced files and assembles the canonical
// "show all locations" display structure. Reconciliation never fails:
// unresolvable files and drifted code are reported through the Exists and
// CodeMatches flags, not through errors.
package locations

import (
	"github.com/scanlens/scanlens/internal/codefile"
	"github.com/scanlens/scanlens/internal/digest"
	"github.com/scanlens/scanlens/internal/issue"
)

// placeholderPath is displayed for taint locations whose record carries no
// file path at all.
const placeholderPath = "Could not locate file"

// Location is a single reconciled anchor in a file. URI is empty when the
// file could not be resolved, in which case FilePath is only a display
// string. CodeMatches is meaningful only when Exists is true.
type Location struct {
	TextRange   *issue.TextRangeWithHash `json:"textRange,omitempty"`
	URI         string                   `json:"uri,omitempty"`
	FilePath    string                   `json:"filePath,omitempty"`
	Message     string                   `json:"message"`
	Exists      bool                     `json:"exists"`
	CodeMatches bool                     `json:"codeMatches"`
}

// locationFromIssue normalizes a live-analysis location. The engine has just
// read the file, so the location always exists; the current code at the range
// is hashed and attached for later reuse, but no drift comparison is
// performed on this path.
func locationFromIssue(loc issue.IssueLocation) Location {
	var hash string
	if loc.InputFile != nil {
		if content, err := loc.InputFile.Contents(); err == nil {
			if code, ok := codefile.FromContent(content).CodeAt(loc.TextRange); ok {
				hash = digest.Hash(code)
			}
		}
	}

	out := Location{
		Message: loc.Message,
		Exists:  true,
	}
	if loc.TextRange != nil {
		out.TextRange = &issue.TextRangeWithHash{TextRange: *loc.TextRange, Hash: hash}
	}
	if loc.InputFile != nil {
		out.URI = loc.InputFile.URI()
		out.FilePath = codefile.URIToPath(out.URI)
	}
	return out
}

// locationFromShowIssue normalizes a remote-protocol location, comparing the
// snippet recorded at detection time against the code currently on disk.
func locationFromShowIssue(loc issue.ShowIssueLocation, cache *codefile.Cache) Location {
	uri := codefile.PathToURI(loc.IdeFilePath)
	out := Location{
		URI:      uri,
		FilePath: uri,
		Message:  loc.Message,
	}
	if loc.TextRange != nil {
		out.TextRange = &issue.TextRangeWithHash{TextRange: *loc.TextRange, Hash: digest.Hash(loc.CodeSnippet)}
	}

	file := cache.Get(uri)
	if loc.TextRange == nil {
		// No recorded range: the file's presence decides existence but
		// there is nothing trustworthy to compare against.
		_, ok := file.Content()
		out.Exists = ok
		return out
	}

	localCode, ok := file.CodeAt(loc.TextRange)
	if !ok {
		return out
	}
	out.Exists = true
	out.CodeMatches = loc.CodeSnippet == localCode
	return out
}

// locationFromTaint normalizes a taint-flow location. The record carries the
// digest of the originally recorded code rather than the code itself, so
// drift is detected by hashing the locally extracted range.
func locationFromTaint(loc issue.TaintLocation, cache *codefile.Cache, workspaceFolderURI string) Location {
	out := Location{
		TextRange: loc.TextRange,
		Message:   loc.Message,
	}
	if loc.FilePath == "" {
		out.FilePath = placeholderPath
		return out
	}
	out.URI = codefile.JoinURI(workspaceFolderURI, loc.FilePath)
	out.FilePath = loc.FilePath

	file := cache.Get(out.URI)
	if loc.TextRange == nil {
		_, ok := file.Content()
		out.Exists = ok
		return out
	}

	localCode, ok := file.CodeAt(&loc.TextRange.TextRange)
	if !ok {
		return out
	}
	out.Exists = true
	out.CodeMatches = digest.Hash(localCode) == loc.TextRange.Hash
	return out
}
