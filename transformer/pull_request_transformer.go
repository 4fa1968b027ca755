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

package transformer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/go-github/v62/github"

	"github.com/l3montree-dev/jiralink/jira"
)

const (
	SkipReasonMalformed   = "pull request payload is missing required fields"
	SkipReasonNoIssueKeys = "pull request title does not reference any issue"
)

// DevInfoResult is one of DevInfoUpdate, DevInfoDelete or DevInfoSkip.
type DevInfoResult interface {
	devInfoResult()
}

// DevInfoUpdate carries the repository payload which should be sent to jira.
type DevInfoUpdate struct {
	Payload jira.Repository
}

// DevInfoDelete signals that the pull request should be removed from jira.
// Emitted when an edit removed the last issue key from the title.
type DevInfoDelete struct {
	RepositoryID      int64
	PullRequestNumber int
}

// DevInfoSkip means nothing should be sent to jira.
type DevInfoSkip struct {
	Reason string
}

func (DevInfoUpdate) devInfoResult() {}
func (DevInfoDelete) devInfoResult() {}
func (DevInfoSkip) devInfoResult() {}

// ResultLabel names the variant of a result for metrics and logs.
func ResultLabel(result DevInfoResult) string {
	switch result.(type) {
	case DevInfoUpdate:
		return "update"
	case DevInfoDelete:
		return "delete"
	default:
		return "skip"
	}
}

type PullRequestTransformer struct {
	sequence *jira.UpdateSequence
}

func NewPullRequestTransformer(sequence *jira.UpdateSequence) *PullRequestTransformer {
	if sequence == nil {
		sequence = jira.DefaultUpdateSequence
	}
	return &PullRequestTransformer{sequence: sequence}
}

// TransformPullRequestEvent maps a pull_request webhook event to a devinfo result.
func (t *PullRequestTransformer) TransformPullRequestEvent(event *github.PullRequestEvent, reviews []*github.PullRequestReview) DevInfoResult {
	if event == nil {
		return DevInfoSkip{Reason: SkipReasonMalformed}
	}

	result := t.TransformPullRequest(event.GetRepo(), event.GetPullRequest(), reviews, nil)

	skip, ok := result.(DevInfoSkip)
	if !ok || skip.Reason != SkipReasonNoIssueKeys {
		return result
	}

	// the title was edited and the issue keys got removed
	changes := event.GetChanges()
	if changes == nil || changes.Title == nil {
		return result
	}
	if len(jira.ExtractIssueKeys(changes.Title.GetFrom())) == 0 {
		return result
	}

	return DevInfoDelete{
		RepositoryID:      event.GetRepo().GetID(),
		PullRequestNumber: event.GetPullRequest().GetNumber(),
	}
}

// TransformPullRequest maps a pull request to a devinfo result.
// headCommit is optional. Without it the last commit of the branch is built from the head reference only.
func (t *PullRequestTransformer) TransformPullRequest(repo *github.Repository, pr *github.PullRequest, reviews []*github.PullRequestReview, headCommit *github.RepositoryCommit) DevInfoResult {
	if !isTransformable(repo, pr) {
		return DevInfoSkip{Reason: SkipReasonMalformed}
	}

	issueKeys := jira.ExtractIssueKeys(pr.GetTitle())
	if len(issueKeys) == 0 {
		return DevInfoSkip{Reason: SkipReasonNoIssueKeys}
	}

	// one sequence id for the whole payload
	updateSequenceID := t.sequence.Next()

	repoURL := repo.GetHTMLURL()
	status := pullRequestStatus(pr)
	lastUpdate := formatTimestamp(pr.GetUpdatedAt())
	if lastUpdate == "" {
		lastUpdate = formatTimestamp(pr.GetCreatedAt())
	}

	headRef := pr.GetHead().GetRef()
	number := pr.GetNumber()

	payload := jira.Repository{
		ID:               strconv.FormatInt(repo.GetID(), 10),
		Name:             repositoryName(repo),
		URL:              repoURL,
		UpdateSequenceID: updateSequenceID,
		PullRequests: []jira.PullRequest{{
			ID:                strconv.Itoa(number),
			DisplayID:         fmt.Sprintf("#%d", number),
			Title:             pr.GetTitle(),
			URL:               pr.GetHTMLURL(),
			Status:            status,
			Author:            userToAuthor(pr.GetUser()),
			CommentCount:      pr.GetComments(),
			SourceBranch:      headRef,
			SourceBranchURL:   branchURL(repoURL, headRef),
			DestinationBranch: branchURL(repoURL, pr.GetBase().GetRef()),
			Timestamp:         lastUpdate,
			LastUpdate:        lastUpdate,
			Reviewers:         reviewersFromReviews(reviews),
			IssueKeys:         issueKeys,
			UpdateSequenceID:  updateSequenceID,
		}},
	}

	// merged and declined pull requests must not bring back their branches
	if status == jira.PullRequestStatusOpen && headRef != "" && pr.GetHead().GetSHA() != "" {
		payload.Branches = []jira.Branch{
			branchFromPullRequest(repoURL, pr, headCommit, lastUpdate, updateSequenceID),
		}
	}

	return DevInfoUpdate{Payload: payload}
}

func isTransformable(repo *github.Repository, pr *github.PullRequest) bool {
	if repo == nil || pr == nil {
		return false
	}
	return repo.GetID() != 0 && repo.GetHTMLURL() != "" && pr.GetNumber() != 0 && pr.GetHTMLURL() != ""
}

func pullRequestStatus(pr *github.PullRequest) jira.PullRequestStatus {
	if pr.GetMerged() || pr.MergedAt != nil {
		return jira.PullRequestStatusMerged
	}
	if pr.GetState() == "closed" {
		return jira.PullRequestStatusDeclined
	}
	return jira.PullRequestStatusOpen
}

func branchFromPullRequest(repoURL string, pr *github.PullRequest, headCommit *github.RepositoryCommit, lastUpdate string, updateSequenceID int64) jira.Branch {
	headRef := pr.GetHead().GetRef()
	branchIssueKeys := jira.ExtractIssueKeysFrom(pr.GetTitle(), headRef)

	return jira.Branch{
		ID:                   headRef,
		Name:                 headRef,
		URL:                  branchURL(repoURL, headRef),
		CreatePullRequestURL: fmt.Sprintf("%s/pull/new/%s", repoURL, headRef),
		IssueKeys:            branchIssueKeys,
		LastCommit:           lastCommit(repoURL, pr, headCommit, lastUpdate, updateSequenceID),
		UpdateSequenceID:     updateSequenceID,
	}
}

func lastCommit(repoURL string, pr *github.PullRequest, headCommit *github.RepositoryCommit, lastUpdate string, updateSequenceID int64) jira.Commit {
	sha := pr.GetHead().GetSHA()

	commit := jira.Commit{
		ID:               sha,
		Hash:             sha,
		DisplayID:        shortSHA(sha),
		Message:          "n/a",
		Author:           jira.Author{Name: pr.GetHead().GetUser().GetLogin()},
		AuthorTimestamp:  lastUpdate,
		URL:              fmt.Sprintf("%s/commit/%s", repoURL, sha),
		UpdateSequenceID: updateSequenceID,
	}

	if headCommit != nil && headCommit.GetSHA() == sha {
		if msg := headCommit.GetCommit().GetMessage(); msg != "" {
			commit.Message = msg
		}
		if author := headCommit.GetCommit().GetAuthor(); author != nil {
			commit.Author = jira.Author{Name: author.GetName(), Email: author.GetEmail()}
			if ts := formatTimestamp(author.GetDate()); ts != "" {
				commit.AuthorTimestamp = ts
			}
		}
		commit.FileCount = len(headCommit.Files)
		if headCommit.GetHTMLURL() != "" {
			commit.URL = headCommit.GetHTMLURL()
		}
	}

	commit.IssueKeys = jira.ExtractIssueKeysFrom(commit.Message, pr.GetTitle(), pr.GetHead().GetRef())
	return commit
}

// reviewersFromReviews keeps the latest review of every user in order of their first review.
func reviewersFromReviews(reviews []*github.PullRequestReview) []jira.Reviewer {
	reviewers := make([]jira.Reviewer, 0, len(reviews))
	index := make(map[string]int)
	submitted := make(map[string]time.Time)

	for _, review := range reviews {
		login := review.GetUser().GetLogin()
		if login == "" {
			continue
		}

		reviewer := jira.Reviewer{
			Name:           login,
			URL:            userURL(review.GetUser()),
			Avatar:         review.GetUser().GetAvatarURL(),
			ApprovalStatus: jira.ApprovalStatusUnapproved,
		}
		if review.GetState() == "APPROVED" {
			reviewer.ApprovalStatus = jira.ApprovalStatusApproved
		}

		i, seen := index[login]
		if !seen {
			index[login] = len(reviewers)
			submitted[login] = review.GetSubmittedAt().Time
			reviewers = append(reviewers, reviewer)
			continue
		}

		// reviews are listed chronologically, but prefer the submission date if both are known
		at := review.GetSubmittedAt().Time
		if !at.IsZero() && !submitted[login].IsZero() && at.Before(submitted[login]) {
			continue
		}
		submitted[login] = at
		reviewers[i] = reviewer
	}
	return reviewers
}

func userToAuthor(user *github.User) jira.Author {
	return jira.Author{
		Name:   user.GetLogin(),
		URL:    userURL(user),
		Avatar: user.GetAvatarURL(),
	}
}

func userURL(user *github.User) string {
	if user.GetHTMLURL() != "" {
		return user.GetHTMLURL()
	}
	return user.GetURL()
}

func repositoryName(repo *github.Repository) string {
	if repo.GetFullName() != "" {
		return repo.GetFullName()
	}
	return repo.GetName()
}

func branchURL(repoURL, branch string) string {
	return fmt.Sprintf("%s/tree/%s", repoURL, branch)
}

func shortSHA(sha string) string {
	if len(sha) < 6 {
		return sha
	}
	return sha[:6]
}

func formatTimestamp(ts github.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}
