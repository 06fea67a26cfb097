package audio

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"sync"
)

// Device starts recordings.
type Device interface {
	Start(ctx context.Context, path string, volume float64) (Voice, error)
}

// Voice is one recording being played.
type Voice interface {
	Stop() error
	// Done is closed when playback has finished or was stopped.
	Done() <-chan struct{}
}

// Fader is implemented by voices whose volume can change while playing.
// Only those are faded out; the others are stopped at once.
type Fader interface {
	SetVolume(v float64) error
}

// ExecDevice plays files with an external command line player such as
// paplay or mpv. The volume is passed when the player starts; its voices
// are not Faders, so they are cut rather than faded.
type ExecDevice struct {
	Command string
}

// Start launches the player on path.
func (d ExecDevice) Start(ctx context.Context, path string, volume float64) (Voice, error) {
	ctx, cancel := context.WithCancel(ctx)

	args := append(volumeArgs(d.Command, volume), path)
	cmd := exec.CommandContext(ctx, d.Command, args...) //nolint:gosec // player command comes from configuration
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("starting %s: %w", d.Command, err)
	}

	v := &execVoice{cmd: cmd, cancel: cancel, done: make(chan struct{})}
	go func() {
		_ = cmd.Wait()
		close(v.done)
	}()
	return v, nil
}

// volumeArgs returns the volume flag understood by known players.
func volumeArgs(command string, volume float64) []string {
	switch filepath.Base(command) {
	case "paplay":
		return []string{fmt.Sprintf("--volume=%d", int(volume*65536))}
	case "mpv":
		return []string{"--no-video", "--really-quiet", fmt.Sprintf("--volume=%d", int(volume*100))}
	case "ffplay":
		return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", "-volume", fmt.Sprint(int(volume * 100))}
	default:
		return nil
	}
}

type execVoice struct {
	cmd    *exec.Cmd
	cancel context.CancelFunc
	done   chan struct{}
}

func (v *execVoice) Stop() error {
	v.cancel()
	<-v.done
	return nil
}

func (v *execVoice) Done() <-chan struct{} { return v.done }

// NopDevice accepts every command and plays nothing. It stands in when audio
// is disabled.
type NopDevice struct{}

func (NopDevice) Start(context.Context, string, float64) (Voice, error) {
	return &nopVoice{done: make(chan struct{})}, nil
}

type nopVoice struct {
	once sync.Once
	done chan struct{}
}

func (v *nopVoice) Stop() error {
	v.once.Do(func() { close(v.done) })
	return nil
}

func (v *nopVoice) Done() <-chan struct{} { return v.done }
