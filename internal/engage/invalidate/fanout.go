// Package invalidate implements the fan-out protocol that marks cached
// views stale after a mutation settles.
//
// There is no push channel from the API to this client, so the protocol
// trades precision for safety: each mutation kind declares a fixed,
// conservative set of cache key prefixes instead of computing the exact
// views whose derived values changed.
package invalidate

import (
	"context"
	"strings"

	"github.com/opencivica/civica/internal/engage/cache"
)

// Mutation identifies the kind of settled mutation driving fan-out.
type Mutation string

const (
	// MutationProjectReaction is an approve/disapprove vote toggle.
	MutationProjectReaction Mutation = "project_reaction"
	// MutationCommentReaction is a comment like toggle.
	MutationCommentReaction Mutation = "comment_reaction"
	// MutationComment is a comment create or delete.
	MutationComment Mutation = "comment_write"
	// MutationProjectWrite is an admin project create, update, or delete.
	MutationProjectWrite Mutation = "project_write"
	// MutationAnnouncementWrite is an admin announcement create or delete.
	MutationAnnouncementWrite Mutation = "announcement_write"
)

// Store is the invalidation surface of the cache store.
type Store interface {
	Invalidate(ctx context.Context, prefixes ...string)
}

// Protocol routes settled mutations to the cache key prefixes they stale.
type Protocol struct {
	store Store
}

// NewProtocol builds a fan-out protocol over the given cache store.
func NewProtocol(store Store) *Protocol {
	return &Protocol{store: store}
}

// OnMutationSettled marks the dependent cache prefixes stale. It must run
// exactly once per mutation, after the success response is observed; the
// caller never invokes it on the failure path.
//
// Feed invalidation deliberately covers every materialized page, not just
// page one: narrowing the refetch reintroduces stale counters when the user
// returns to the list view.
func (p *Protocol) OnMutationSettled(ctx context.Context, mutation Mutation, projectID string) {
	if p == nil || p.store == nil {
		return
	}
	prefixes := PrefixesFor(mutation, projectID)
	if len(prefixes) == 0 {
		return
	}
	p.store.Invalidate(ctx, prefixes...)
}

// PrefixesFor returns the conservative invalidation set for one mutation.
func PrefixesFor(mutation Mutation, projectID string) []string {
	projectID = strings.TrimSpace(projectID)
	switch mutation {
	case MutationProjectReaction:
		return []string{
			cache.ProjectReactionsKey(projectID),
			cache.ProjectDetailKey(projectID),
			cache.FeedPrefix,
			cache.DashboardPrefix,
		}
	case MutationCommentReaction:
		return []string{
			cache.ProjectCommentsKey(projectID),
			cache.DashboardPrefix,
		}
	case MutationComment:
		return []string{
			cache.ProjectCommentsKey(projectID),
			cache.ProjectDetailKey(projectID),
			cache.FeedPrefix,
		}
	case MutationProjectWrite:
		return []string{
			cache.ProjectDetailKey(projectID),
			cache.FeedPrefix,
			cache.DashboardPrefix,
		}
	case MutationAnnouncementWrite:
		return []string{
			cache.AnnouncementsPrefix,
		}
	default:
		return nil
	}
}
