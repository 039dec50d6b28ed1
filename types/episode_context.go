package types

// EpisodeContext carries the information used and produced by one episode.
type EpisodeContext struct {
	Episode   int
	Timesteps int
	Trace     *Trace
	Err       error
}

func NewEpisodeContext(episode int) *EpisodeContext {
	return &EpisodeContext{
		Episode: episode,
		Trace:   NewTrace(),
	}
}

func (e *EpisodeContext) SetError(err error) {
	e.Err = err
}
