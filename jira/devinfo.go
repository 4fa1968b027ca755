// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package jira

// Types of the jira development information api (devinfo 0.10).
// See https://developer.atlassian.com/cloud/jira/software/rest/api-group-development-information/

type PullRequestStatus string

const (
	PullRequestStatusOpen     PullRequestStatus = "OPEN"
	PullRequestStatusMerged   PullRequestStatus = "MERGED"
	PullRequestStatusDeclined PullRequestStatus = "DECLINED"
)

type ApprovalStatus string

const (
	ApprovalStatusApproved   ApprovalStatus = "APPROVED"
	ApprovalStatusUnapproved ApprovalStatus = "UNAPPROVED"
)

type Author struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	URL    string `json:"url,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

type Reviewer struct {
	Name           string         `json:"name"`
	URL            string         `json:"url,omitempty"`
	Avatar         string         `json:"avatar,omitempty"`
	ApprovalStatus ApprovalStatus `json:"approvalStatus"`
}

type Commit struct {
	ID               string   `json:"id"`
	Hash             string   `json:"hash"`
	DisplayID        string   `json:"displayId"`
	Message          string   `json:"message"`
	Author           Author   `json:"author"`
	AuthorTimestamp  string   `json:"authorTimestamp"`
	FileCount        int      `json:"fileCount"`
	URL              string   `json:"url"`
	IssueKeys        []string `json:"issueKeys"`
	UpdateSequenceID int64    `json:"updateSequenceId"`
}

type Branch struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	URL                  string   `json:"url"`
	CreatePullRequestURL string   `json:"createPullRequestUrl"`
	IssueKeys            []string `json:"issueKeys"`
	LastCommit           Commit   `json:"lastCommit"`
	UpdateSequenceID     int64    `json:"updateSequenceId"`
}

type PullRequest struct {
	ID                string            `json:"id"`
	DisplayID         string            `json:"displayId"`
	Title             string            `json:"title"`
	URL               string            `json:"url"`
	Status            PullRequestStatus `json:"status"`
	Author            Author            `json:"author"`
	CommentCount      int               `json:"commentCount"`
	SourceBranch      string            `json:"sourceBranch"`
	SourceBranchURL   string            `json:"sourceBranchUrl"`
	DestinationBranch string            `json:"destinationBranch"`
	Timestamp         string            `json:"timestamp"`
	LastUpdate        string            `json:"lastUpdate"`
	Reviewers         []Reviewer        `json:"reviewers"`
	IssueKeys         []string          `json:"issueKeys"`
	UpdateSequenceID  int64             `json:"updateSequenceId"`
}

// Repository is the envelope jira expects for every devinfo update.
// Branches are omitted entirely for merged or declined pull requests.
type Repository struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	URL              string        `json:"url"`
	UpdateSequenceID int64         `json:"updateSequenceId"`
	PullRequests     []PullRequest `json:"pullRequests"`
	Branches         []Branch      `json:"branches,omitempty"`
}

// WithUpdateSequenceID stamps the repository and every record it carries with the same id,
// jira applies the payload as a single version.
func (r Repository) WithUpdateSequenceID(id int64) Repository {
	r.UpdateSequenceID = id

	pullRequests := make([]PullRequest, len(r.PullRequests))
	for i, pr := range r.PullRequests {
		pr.UpdateSequenceID = id
		pullRequests[i] = pr
	}
	r.PullRequests = pullRequests

	if r.Branches != nil {
		branches := make([]Branch, len(r.Branches))
		for i, branch := range r.Branches {
			branch.UpdateSequenceID = id
			branch.LastCommit.UpdateSequenceID = id
			branches[i] = branch
		}
		r.Branches = branches
	}
	return r
}

// BulkRequest is the body of POST /rest/devinfo/0.10/bulk
type BulkRequest struct {
	Repositories       []Repository      `json:"repositories"`
	PreventTransitions bool              `json:"preventTransitions"`
	Properties         map[string]string `json:"properties,omitempty"`
}
