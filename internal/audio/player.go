// Package audio plays prayer recordings on a background worker. The UI
// sends commands and never waits for playback.
package audio

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Kind is the type of a Command.
type Kind int

const (
	KindPlay Kind = iota
	KindPause
	KindSetVolume
)

// Command is a request to the player.
type Command struct {
	Kind   Kind
	Path   string
	Volume float64
}

// Play starts the recording at path from the beginning. Whatever is playing
// is faded out first, even when it is the same recording.
func Play(path string) Command { return Command{Kind: KindPlay, Path: path} }

// Pause fades out and stops the current recording.
func Pause() Command { return Command{Kind: KindPause} }

// SetVolume sets the volume in the range 0..1.
func SetVolume(v float64) Command { return Command{Kind: KindSetVolume, Volume: v} }

const (
	defaultFadeSteps = 100
	defaultFadeStep  = 10 * time.Millisecond
)

// Player owns a Device and executes Commands one at a time.
//
// Commands are coalesced while the worker is busy: a Play or Pause replaces
// any pending Play or Pause, and only the last volume is kept. The recording
// that ends up playing is always the one for the newest Play.
type Player struct {
	device Device
	logger *slog.Logger

	fadeSteps int
	fadeStep  time.Duration

	mu      sync.Mutex
	pending *Command
	level   *float64
	closed  bool
	wake    chan struct{}

	// Owned by the Run goroutine.
	volume  float64
	current Voice
	path    string
}

// Option configures a Player.
type Option func(*Player)

// WithFade sets the number and duration of fade steps.
func WithFade(steps int, step time.Duration) Option {
	return func(p *Player) {
		if steps > 0 {
			p.fadeSteps = steps
		}
		p.fadeStep = step
	}
}

// WithVolume sets the initial volume.
func WithVolume(v float64) Option {
	return func(p *Player) { p.volume = clamp(v) }
}

// WithLogger sets the logger for playback errors.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Player) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPlayer returns a player for device. Call Run to start it.
func NewPlayer(device Device, opts ...Option) *Player {
	p := &Player{
		device:    device,
		logger:    slog.Default(),
		fadeSteps: defaultFadeSteps,
		fadeStep:  defaultFadeStep,
		volume:    1,
		wake:      make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Send queues cmd without blocking. It reports false once the player is
// closed.
func (p *Player) Send(cmd Command) bool {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	if cmd.Kind == KindSetVolume {
		v := cmd.Volume
		p.level = &v
	} else {
		p.pending = &cmd
	}
	p.mu.Unlock()

	p.notify()
	return true
}

// Close stops accepting commands. Run returns once the pending commands are
// executed.
func (p *Player) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.notify()
}

func (p *Player) notify() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// take returns the pending commands in execution order, volume first.
func (p *Player) take() (cmds []Command, closed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.level != nil {
		cmds = append(cmds, SetVolume(*p.level))
	}
	if p.pending != nil {
		cmds = append(cmds, *p.pending)
	}
	p.level, p.pending = nil, nil
	return cmds, p.closed
}

// Run executes commands until ctx is cancelled or the player is closed,
// then stops playback.
func (p *Player) Run(ctx context.Context) error {
	defer p.stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.wake:
		}

		cmds, closed := p.take()
		for _, cmd := range cmds {
			p.handle(ctx, cmd)
		}
		if closed {
			return nil
		}
	}
}

func (p *Player) handle(ctx context.Context, cmd Command) {
	switch cmd.Kind {
	case KindPlay:
		p.fadeOut(ctx)
		voice, err := p.device.Start(ctx, cmd.Path, p.volume)
		if err != nil {
			p.logger.Error("starting playback", "path", cmd.Path, "error", err)
			return
		}
		p.current, p.path = voice, cmd.Path
		p.logger.Debug("playing", "path", cmd.Path)

	case KindPause:
		p.fadeOut(ctx)

	case KindSetVolume:
		p.volume = clamp(cmd.Volume)
		if f, ok := p.current.(Fader); ok {
			if err := f.SetVolume(p.volume); err != nil {
				p.logger.Warn("setting volume", "error", err)
			}
		}
	}
}

func (p *Player) playing() bool {
	if p.current == nil {
		return false
	}
	select {
	case <-p.current.Done():
		return false
	default:
		return true
	}
}

// fadeOut lowers the volume of the current voice to zero and stops it.
// Voices that cannot change volume are stopped at once.
func (p *Player) fadeOut(ctx context.Context) {
	f, ok := p.current.(Fader)
	if !ok || !p.playing() {
		p.stop()
		return
	}
	for i := p.fadeSteps - 1; i >= 0; i-- {
		if err := f.SetVolume(p.volume * float64(i) / float64(p.fadeSteps)); err != nil {
			break
		}
		if !p.wait(ctx) {
			break
		}
	}
	p.stop()
}

// wait sleeps one fade step and reports false if ctx ended first.
func (p *Player) wait(ctx context.Context) bool {
	if p.fadeStep <= 0 {
		return true
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(p.fadeStep):
		return true
	}
}

func (p *Player) stop() {
	if p.current == nil {
		return
	}
	if err := p.current.Stop(); err != nil {
		p.logger.Debug("stopping playback", "path", p.path, "error", err)
	}
	p.current, p.path = nil, ""
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
