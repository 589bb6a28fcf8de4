package animations

// Animation is a playhead over a strip of frames. Frames holds indices into
// the strip so an instance can reorder its frames without touching the strip.
type Animation struct {
	Frames      []int
	ImgDuration int  // ticks each frame stays on screen
	Loop        bool // restart after the last frame instead of finishing
	Done        bool // set once a non-looping animation has played its last tick

	frame int
}

// NewAnimation plays frames 0..count-1 of a strip.
func NewAnimation(count, imgDuration int, loop bool) *Animation {
	if imgDuration < 1 {
		imgDuration = 1
	}
	frames := make([]int, count)
	for i := range frames {
		frames[i] = i
	}
	return &Animation{
		Frames:      frames,
		ImgDuration: imgDuration,
		Loop:        loop,
	}
}

func (a *Animation) length() int {
	return a.ImgDuration * len(a.Frames)
}

// Update advances the playhead by one tick.
func (a *Animation) Update() {
	total := a.length()
	if total == 0 {
		a.Done = !a.Loop
		return
	}
	if a.Loop {
		a.frame = (a.frame + 1) % total
		return
	}
	a.frame = min(a.frame+1, total-1)
	if a.frame >= total-1 {
		a.Done = true
	}
}

// Tick returns the number of ticks played, wrapped for looping animations.
func (a *Animation) Tick() int {
	return a.frame
}

// Frame returns the strip index of the frame on screen.
func (a *Animation) Frame() int {
	if len(a.Frames) == 0 {
		return 0
	}
	return a.Frames[a.frame/a.ImgDuration]
}

// Restart rewinds to the first tick.
func (a *Animation) Restart() {
	a.frame = 0
	a.Done = false
}

// Copy returns an independent playhead at tick zero with its own frame order.
func (a *Animation) Copy() *Animation {
	frames := make([]int, len(a.Frames))
	copy(frames, a.Frames)
	return &Animation{
		Frames:      frames,
		ImgDuration: a.ImgDuration,
		Loop:        a.Loop,
	}
}

// Reverse flips the frame order of this instance only.
func (a *Animation) Reverse() {
	for i, j := 0, len(a.Frames)-1; i < j; i, j = i+1, j-1 {
		a.Frames[i], a.Frames[j] = a.Frames[j], a.Frames[i]
	}
}

// Seek moves the playhead to a tick inside the strip.
func (a *Animation) Seek(tick int) {
	total := a.length()
	if total == 0 {
		return
	}
	a.frame = min(max(tick, 0), total-1)
}
