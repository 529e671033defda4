package render

// Frame is one UI call captured by a Recorder.
type Frame struct {
	Kind        string       `json:"kind" yaml:"kind"`
	Depth       int          `json:"depth,omitempty" yaml:"depth,omitempty"`
	State       any          `json:"state" yaml:"state"`
	Interaction *Interaction `json:"interaction,omitempty" yaml:"interaction,omitempty"`
}

// Recorder is a headless UI. It captures every call as a Frame and replays
// interactions scripted with On. It is not safe for concurrent use.
type Recorder struct {
	Frames []Frame

	depth    int
	scripted map[string]Interaction
}

func NewRecorder() *Recorder { return &Recorder{scripted: map[string]Interaction{}} }

// On scripts in for the next widget drawn with the given name. Each scripted
// interaction is consumed once.
func (r *Recorder) On(name string, in Interaction) *Recorder {
	if r.scripted == nil {
		r.scripted = map[string]Interaction{}
	}
	r.scripted[name] = in
	return r
}

// Reset drops recorded frames, keeping pending scripts.
func (r *Recorder) Reset() { r.Frames = r.Frames[:0] }

// Find returns the states of all recorded frames of the given kind.
func (r *Recorder) Find(kind string) []any {
	var out []any
	for _, f := range r.Frames {
		if f.Kind == kind {
			out = append(out, f.State)
		}
	}
	return out
}

func (r *Recorder) push(kind string, s any) {
	r.Frames = append(r.Frames, Frame{Kind: kind, Depth: r.depth, State: s})
}

func (r *Recorder) interact(kind string, id Ident, s any) Interaction {
	r.push(kind, s)
	if id.Name == "" {
		return Interaction{}
	}
	in, ok := r.scripted[id.Name]
	if !ok {
		return Interaction{}
	}
	delete(r.scripted, id.Name)
	r.Frames[len(r.Frames)-1].Interaction = &in
	return in
}

func (r *Recorder) nest(body func(UI)) {
	r.depth++
	body(r)
	r.depth--
}

func (r *Recorder) Window(s WindowState, body func(UI)) {
	r.push("window", s)
	r.nest(body)
}

func (r *Recorder) Button(s ButtonState) Interaction { return r.interact("button", s.Ident, s) }

func (r *Recorder) Label(s LabelState) Interaction { return r.interact("label", s.Ident, s) }

func (r *Recorder) Separator(s SeparatorState) Interaction {
	return r.interact("separator", s.Ident, s)
}

func (r *Recorder) Layout(s LayoutState, body func(UI)) {
	r.push("layout", s)
	r.nest(body)
}
