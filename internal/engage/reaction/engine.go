// Package reaction translates vote gestures into API mutations.
//
// A project vote is a three-state machine (none, liked, disliked): the same
// gesture resolves to a create, an update, or a delete depending on the
// viewer's current reaction at the moment of the gesture. Comment likes use
// the API's coarser opaque toggle instead. The engine never patches
// aggregates optimistically; the pressed control stays pending until the
// round trip settles and the fan-out refetch reconciles every view.
package reaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/opencivica/civica/internal/engage/invalidate"
)

// Kind is a project reaction type.
type Kind string

const (
	KindLike    Kind = "LIKE"
	KindDislike Kind = "DISLIKE"
)

// ErrTogglePending reports a gesture on a target whose previous toggle has
// not settled yet. The UI rejects these instead of queueing them.
var ErrTogglePending = errors.New("a toggle for this target is already in flight")

// ViewerReaction is the viewer's standing reaction on a project target.
// Absence (nil) is the deleted state; reactions are never hard-deleted
// client-side.
type ViewerReaction struct {
	ReactionID string
	Kind       Kind
}

// Aggregate is the counted reaction summary for one project target.
type Aggregate struct {
	LikeCount    uint
	DislikeCount uint
	Viewer       *ViewerReaction
}

// API is the mutation surface the engine drives.
type API interface {
	CreateProjectReaction(ctx context.Context, projectID string, kind Kind) (reactionID string, err error)
	UpdateProjectReaction(ctx context.Context, projectID, reactionID string, kind Kind) error
	DeleteProjectReaction(ctx context.Context, projectID, reactionID string) error
	ToggleCommentLike(ctx context.Context, projectID, commentID string) error
}

// AggregateSource reads the viewer's current reaction state. The read is
// point-in-time: the engine consults it once per gesture, before choosing
// which verb to issue.
type AggregateSource interface {
	ProjectAggregate(ctx context.Context, projectID, viewerID string) (Aggregate, error)
}

// Settler receives exactly one notification per successful mutation.
type Settler interface {
	OnMutationSettled(ctx context.Context, mutation invalidate.Mutation, projectID string)
}

// Engine serializes reaction toggles per (viewer, target) and routes
// settled mutations into the invalidation fan-out.
type Engine struct {
	api        API
	aggregates AggregateSource
	settler    Settler

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewEngine builds a toggle engine.
func NewEngine(api API, aggregates AggregateSource, settler Settler) *Engine {
	return &Engine{
		api:        api,
		aggregates: aggregates,
		settler:    settler,
		inflight:   make(map[string]struct{}),
	}
}

// ToggleProject applies one vote gesture on a project.
//
// Transitions: no reaction creates one of the given kind; the same kind
// deletes the existing reaction (un-vote); the opposite kind updates the
// existing reaction in a single request rather than delete-plus-create.
func (e *Engine) ToggleProject(ctx context.Context, viewerID, projectID string, kind Kind) error {
	if e == nil || e.api == nil || e.aggregates == nil {
		return fmt.Errorf("reaction engine is not configured")
	}
	viewerID = strings.TrimSpace(viewerID)
	if viewerID == "" {
		return fmt.Errorf("viewer id is required")
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return fmt.Errorf("project id is required")
	}
	if kind != KindLike && kind != KindDislike {
		return fmt.Errorf("unknown reaction kind %q", kind)
	}

	key := "project:" + viewerID + ":" + projectID
	if !e.begin(key) {
		return ErrTogglePending
	}
	defer e.end(key)

	aggregate, err := e.aggregates.ProjectAggregate(ctx, projectID, viewerID)
	if err != nil {
		return fmt.Errorf("read reaction state for project %q: %w", projectID, err)
	}

	switch {
	case aggregate.Viewer == nil:
		if _, err := e.api.CreateProjectReaction(ctx, projectID, kind); err != nil {
			return fmt.Errorf("create reaction: %w", err)
		}
	case aggregate.Viewer.Kind == kind:
		if err := e.api.DeleteProjectReaction(ctx, projectID, aggregate.Viewer.ReactionID); err != nil {
			return fmt.Errorf("delete reaction: %w", err)
		}
	default:
		if err := e.api.UpdateProjectReaction(ctx, projectID, aggregate.Viewer.ReactionID, kind); err != nil {
			return fmt.Errorf("update reaction: %w", err)
		}
	}

	e.settle(ctx, invalidate.MutationProjectReaction, projectID)
	return nil
}

// ToggleCommentLike applies one like gesture on a comment. The server
// resolves create-or-delete internally; the engine only knows the boolean
// contract and never issues a switch transition for comments.
func (e *Engine) ToggleCommentLike(ctx context.Context, viewerID, projectID, commentID string) error {
	if e == nil || e.api == nil {
		return fmt.Errorf("reaction engine is not configured")
	}
	viewerID = strings.TrimSpace(viewerID)
	if viewerID == "" {
		return fmt.Errorf("viewer id is required")
	}
	projectID = strings.TrimSpace(projectID)
	commentID = strings.TrimSpace(commentID)
	if projectID == "" || commentID == "" {
		return fmt.Errorf("project id and comment id are required")
	}

	key := "comment:" + viewerID + ":" + commentID
	if !e.begin(key) {
		return ErrTogglePending
	}
	defer e.end(key)

	if err := e.api.ToggleCommentLike(ctx, projectID, commentID); err != nil {
		return fmt.Errorf("toggle comment like: %w", err)
	}

	e.settle(ctx, invalidate.MutationCommentReaction, projectID)
	return nil
}

func (e *Engine) settle(ctx context.Context, mutation invalidate.Mutation, projectID string) {
	if e.settler == nil {
		return
	}
	e.settler.OnMutationSettled(ctx, mutation, projectID)
}

func (e *Engine) begin(key string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, pending := e.inflight[key]; pending {
		return false
	}
	e.inflight[key] = struct{}{}
	return true
}

func (e *Engine) end(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inflight, key)
}
