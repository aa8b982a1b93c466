// Package issue holds the three source shapes that can describe a recorded
// analysis issue: a live in-process analysis result, a remote "show issue"
// request carrying code snippets, and a taint vulnerability record carrying
// content hashes instead of snippets.
package issue

import (
	"time"

	"github.com/google/uuid"
)

// InputFile is the handle the analysis engine exposes for a file it just
// analysed. Contents returns the text the engine read; it may fail if the
// engine's view of the file is gone.
type InputFile interface {
	URI() string
	Contents() (string, error)
}

// IssueLocation is one step of a live-analysis flow. InputFile may be nil for
// locations that are not file-backed.
type IssueLocation struct {
	InputFile InputFile
	TextRange *TextRange
	Message   string
}

// IssueFlow is an ordered code path produced by the live analysis.
type IssueFlow struct {
	Locations []IssueLocation
}

// Issue is a live-analysis result. The input file, severity and rule key come
// straight from the analysis engine.
type Issue struct {
	InputFile InputFile
	Message   string
	Severity  string
	RuleKey   string
	TextRange *TextRange
	Flows     []IssueFlow
}

// ShowIssueLocation is one step of a remote-protocol flow. The code snippet is
// the text as last seen by the server at detection time.
type ShowIssueLocation struct {
	IdeFilePath string     `json:"ideFilePath"`
	TextRange   *TextRange `json:"textRange"`
	CodeSnippet string     `json:"codeSnippet"`
	Message     string     `json:"message"`
}

// ShowIssueFlow is an ordered code path inside a remote "show issue" request.
type ShowIssueFlow struct {
	Locations []ShowIssueLocation `json:"locations"`
}

// ShowIssueRequest is the remote-protocol shape: a server asks the editor to
// display an issue it knows about, embedding the code snippets it recorded.
type ShowIssueRequest struct {
	Key          string          `json:"key"`
	IdeFilePath  string          `json:"ideFilePath"`
	Message      string          `json:"message"`
	RuleKey      string          `json:"ruleKey"`
	TextRange    *TextRange      `json:"textRange"`
	CodeSnippet  string          `json:"codeSnippet"`
	CreationDate string          `json:"creationDate,omitempty"`
	Flows        []ShowIssueFlow `json:"flows"`
}

// TaintLocation is one step of a taint flow. FilePath is relative to the
// workspace folder; the text range carries the hash of the originally
// recorded code instead of the code itself.
type TaintLocation struct {
	FilePath  string             `json:"filePath"`
	TextRange *TextRangeWithHash `json:"textRange"`
	Message   string             `json:"message"`
}

// TaintFlow is an ordered code path inside a taint vulnerability record.
type TaintFlow struct {
	Locations []TaintLocation `json:"locations"`
}

// TaintVulnerability is a security issue tracked across analysis sessions,
// anchored by workspace-relative paths and content hashes.
type TaintVulnerability struct {
	ID                 uuid.UUID          `json:"id"`
	IdeFilePath        string             `json:"ideFilePath"`
	Message            string             `json:"message"`
	Severity           string             `json:"severity"`
	RuleKey            string             `json:"ruleKey"`
	TextRange          *TextRangeWithHash `json:"textRange"`
	IntroductionDate   time.Time          `json:"introductionDate"`
	WorkspaceFolderURI string             `json:"workspaceFolderUri"`
	Flows              []TaintFlow        `json:"flows"`
}
