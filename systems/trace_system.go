package systems

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gocarina/gocsv"

	"ebiten-platformer/components"
	"ebiten-platformer/ecs"
)

// TraceSample is one CSV row of the frame trace
type TraceSample struct {
	Frame   int     `csv:"frame"`
	PlayerX float64 `csv:"player_x"`
	PlayerY float64 `csv:"player_y"`
	OffsetX int     `csv:"offset_x"`
	OffsetY int     `csv:"offset_y"`
}

// TraceSystem records the player and camera every frame as CSV
type TraceSystem struct {
	out           io.Writer
	logger        *log.Logger
	batch         int
	pending       []TraceSample
	frame         int
	headerWritten bool
	disabled      bool
}

// NewTraceSystem creates a trace writer flushing every batch samples.
// A batch below 1 flushes every frame.
func NewTraceSystem(out io.Writer, batch int, logger *log.Logger) *TraceSystem {
	if batch < 1 {
		batch = 1
	}
	return &TraceSystem{
		out:    out,
		logger: logger,
		batch:  batch,
	}
}

// Update samples the current frame
func (s *TraceSystem) Update(world *ecs.World, dt float64) {
	if s.disabled {
		return
	}
	s.frame++

	sample := TraceSample{Frame: s.frame}
	if player, ok := world.FirstWithTag(components.TagPlayer); ok {
		if pos, ok := ecs.Get[*components.PositionComponent](world, player.ID, components.Position); ok {
			sample.PlayerX, sample.PlayerY = pos.X, pos.Y
		}
	}
	if cam, ok := world.FirstWithTag(components.TagCamera); ok {
		if camera, ok := ecs.Get[*components.CameraComponent](world, cam.ID, components.Camera); ok {
			sample.OffsetX, sample.OffsetY = camera.OffsetX, camera.OffsetY
		}
	}

	s.pending = append(s.pending, sample)
	if len(s.pending) >= s.batch {
		if err := s.Flush(); err != nil {
			s.disable(err)
			world.EmitEvent(TraceStoppedEvent{Err: err})
		}
	}
}

// Flush writes buffered samples
func (s *TraceSystem) Flush() error {
	if len(s.pending) == 0 {
		return nil
	}

	var err error
	if !s.headerWritten {
		err = gocsv.Marshal(s.pending, s.out)
		s.headerWritten = err == nil
	} else {
		err = gocsv.MarshalWithoutHeaders(s.pending, s.out)
	}
	s.pending = s.pending[:0]
	if err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// Frames returns how many frames have been sampled
func (s *TraceSystem) Frames() int {
	return s.frame
}

// Disabled reports whether tracing stopped after a write error
func (s *TraceSystem) Disabled() bool {
	return s.disabled
}

func (s *TraceSystem) disable(err error) {
	s.disabled = true
	if s.logger != nil {
		s.logger.Error("trace disabled", "err", err)
	}
}
