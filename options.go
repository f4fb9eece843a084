package peg

// Options is the recognized configuration set from §6, one field per
// named option plus an opaque Custom bag for grammar-specific values.
// Shaped after norswap.autumn.ParseOptions (original_source): a handful of
// named booleans plus a metrics sink and a custom key/value map, built
// through a fluent builder whose defaults match Autumn's.
type Options struct {
	RecordCallStack     bool
	WellFormednessCheck bool
	Trace               bool
	TrackWhitespace     bool
	Metrics             *Metrics
	Custom              map[any]any
}

// DefaultOptions mirrors norswap.autumn.ParseOptions' defaults:
// well_formedness_check and track_whitespace on, trace and
// record_call_stack off.
func DefaultOptions() *Options {
	return &Options{
		WellFormednessCheck: true,
		TrackWhitespace:     true,
	}
}

// WithRecordCallStack enables or disables call-stack recording.
func (o *Options) WithRecordCallStack(enabled bool) *Options {
	o.RecordCallStack = enabled
	return o
}

// WithWellFormednessCheck enables or disables the §4.6 pre-parse check.
func (o *Options) WithWellFormednessCheck(enabled bool) *Options {
	o.WellFormednessCheck = enabled
	return o
}

// WithTrace enables or disables per-parser metrics collection. Enabling it
// without an explicit metrics sink lazily creates one, mirroring Autumn's
// "trace implies metrics" coupling; disabling it drops the sink.
func (o *Options) WithTrace(enabled bool) *Options {
	o.Trace = enabled
	if !enabled {
		o.Metrics = nil
	} else if o.Metrics == nil {
		o.Metrics = newMetrics()
	}
	return o
}

// WithTrackWhitespace enables or disables whitespace-span tracking.
func (o *Options) WithTrackWhitespace(enabled bool) *Options {
	o.TrackWhitespace = enabled
	return o
}

// WithMetrics sets the metrics sink and implies Trace = (metrics != nil).
func (o *Options) WithMetrics(m *Metrics) *Options {
	o.Metrics = m
	o.Trace = m != nil
	return o
}

// WithCustom registers an opaque grammar-specific key/value pair. Keys
// should be unexported types or pointers to avoid collisions between
// unrelated grammars sharing the same Options, the same advice Autumn
// gives for its custom() option.
func (o *Options) WithCustom(key, value any) *Options {
	if o.Custom == nil {
		o.Custom = map[any]any{}
	}
	o.Custom[key] = value
	return o
}

// GetCustom looks up a previously registered opaque option.
func (o *Options) GetCustom(key any) (any, bool) {
	v, ok := o.Custom[key]
	return v, ok
}
