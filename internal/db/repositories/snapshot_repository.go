package repositories

import (
	"context"

	"meal_voting_system/internal/apperrors"
	"meal_voting_system/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	"github.com/pkg/errors"
)

type snapshotRepository struct {
	repository
}

// SnapshotRepository produces the fully hydrated session read model from a
// single transaction, so the snapshot is a consistent point-in-time view.
type SnapshotRepository interface {
	GetSessionSnapshot(sessionID int64) (*models.SessionSnapshot, error)
}

func NewSnapshotRepository(db *pg.DB) SnapshotRepository {
	return &snapshotRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *snapshotRepository) GetSessionSnapshot(sessionID int64) (*models.SessionSnapshot, error) {
	snapshot := &models.SessionSnapshot{}

	err := r.db.RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		// Under the default READ COMMITTED level every statement takes its
		// own snapshot, so a mutation committing mid-build could mix pre-
		// and post-commit state. REPEATABLE READ pins all reads below to
		// one MVCC snapshot.
		if _, err := tx.Exec("SET TRANSACTION ISOLATION LEVEL REPEATABLE READ"); err != nil {
			return err
		}

		session := &models.VotingSession{}
		err := tx.Model(session).
			Where("voting_session.id = ?", sessionID).
			Select()
		if err == pg.ErrNoRows {
			return &apperrors.NotFoundError{Resource: "session", ID: sessionID}
		}
		if err != nil {
			return err
		}
		snapshot.Session = session

		group := &models.Group{}
		err = tx.Model(group).
			Relation("Members", func(q *orm.Query) (*orm.Query, error) {
				return q.Where("is_active"), nil
			}).
			Where("\"group\".id = ?", session.GroupID).
			Select()
		if err != nil && err != pg.ErrNoRows {
			return err
		}
		snapshot.Group = group

		proposals := make([]*models.MealProposal, 0)
		err = tx.Model(&proposals).
			Relation("Meal").
			Where("meal_proposal.session_id = ?", sessionID).
			Where("meal_proposal.is_active").
			OrderExpr("meal_proposal.created_at ASC, meal_proposal.id ASC").
			Select()
		if err != nil {
			return err
		}

		votes := make([]*models.Vote, 0)
		err = tx.Model(&votes).
			Where("session_id = ?", sessionID).
			Where("is_active").
			OrderExpr("id ASC").
			Select()
		if err != nil {
			return err
		}

		votesByProposal := make(map[int64][]*models.Vote, len(proposals))
		for _, vote := range votes {
			votesByProposal[vote.ProposalID] = append(votesByProposal[vote.ProposalID], vote)
		}

		snapshot.Proposals = make([]*models.ProposalSnapshot, 0, len(proposals))
		for _, proposal := range proposals {
			proposalVotes := votesByProposal[proposal.ID]
			tally := 0
			for _, vote := range proposalVotes {
				if vote.Type == models.VoteTypeYes {
					tally++
				}
			}
			snapshot.Proposals = append(snapshot.Proposals, &models.ProposalSnapshot{
				Proposal: proposal,
				Votes:    proposalVotes,
				Tally:    tally,
			})
		}

		readyConfirmations := make([]*models.ReadyConfirmation, 0)
		err = tx.Model(&readyConfirmations).
			Where("session_id = ?", sessionID).
			OrderExpr("id ASC").
			Select()
		if err != nil {
			return err
		}
		snapshot.ReadyConfirmations = readyConfirmations

		voteConfirmations := make([]*models.VoteConfirmation, 0)
		err = tx.Model(&voteConfirmations).
			Where("session_id = ?", sessionID).
			OrderExpr("id ASC").
			Select()
		if err != nil {
			return err
		}
		snapshot.VoteConfirmations = voteConfirmations

		return nil
	})
	if err != nil {
		notFound := &apperrors.NotFoundError{}
		if errors.As(err, &notFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to build session snapshot")
	}

	return snapshot, nil
}
