package configs

import "time"

type Session struct {
	DefaultProposalDurationSeconds int `env:"SESSION_DEFAULT_PROPOSAL_DURATION_SECONDS" envDefault:"300"`
	VotingDurationSeconds          int `env:"SESSION_VOTING_DURATION_SECONDS" envDefault:"300"`
	SchedulerIntervalSeconds       int `env:"SESSION_SCHEDULER_INTERVAL_SECONDS" envDefault:"15"`
}

func (c Session) DefaultProposalDuration() time.Duration {
	return time.Duration(c.DefaultProposalDurationSeconds) * time.Second
}

func (c Session) VotingDuration() time.Duration {
	return time.Duration(c.VotingDurationSeconds) * time.Second
}

func (c Session) SchedulerInterval() time.Duration {
	return time.Duration(c.SchedulerIntervalSeconds) * time.Second
}
