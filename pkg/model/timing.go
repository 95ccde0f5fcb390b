package model

import (
	"slices"

	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Timing specifies an event that may occur multiple times.
type Timing struct {
	backboneElement
	event  []*DateTime      `fhir:"event,summary"`
	repeat *TimingRepeat    `fhir:"repeat,summary"`
	code   *CodeableConcept `fhir:"code,summary,binding=TimingAbbreviation,strength=preferred,valueSet=http://hl7.org/fhir/ValueSet/timing-abbreviation"`
}

// Event returns Timing.event.
func (t *Timing) Event() []*DateTime { return t.event }

// Repeat returns Timing.repeat.
func (t *Timing) Repeat() *TimingRepeat { return t.repeat }

// Code returns Timing.code.
func (t *Timing) Code() *CodeableConcept { return t.code }

// FHIRType returns "Timing".
func (*Timing) FHIRType() string { return "Timing" }

// Accept implements visitor.Visitable.
func (t *Timing) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if t == nil || !v.PreVisit(t) {
		return
	}
	v.VisitStart(elementName, elementIndex, t)
	if v.Visit(elementName, elementIndex, t) {
		t.acceptBackbone(v)
		acceptList(v, "event", t.event)
		accept(v, "repeat", t.repeat)
		accept(v, "code", t.code)
	}
	v.VisitEnd(elementName, elementIndex, t)
	v.PostVisit(t)
}

// Equal reports whether t and other are structurally equal.
func (t *Timing) Equal(other *Timing) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.equalBackbone(&other.backboneElement) &&
		equalList(t.event, other.event) &&
		t.repeat.Equal(other.repeat) &&
		t.code.Equal(other.code)
}

func (t *Timing) equalBase(other Base) bool {
	o, ok := other.(*Timing)
	return ok && t.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of t.
func (t *Timing) ToBuilder() *TimingBuilder {
	return NewTimingBuilder().From(t)
}

// TimingBuilder builds Timing values.
type TimingBuilder struct {
	backboneElementBuilder[*TimingBuilder]
	event  []*DateTime
	repeat *TimingRepeat
	code   *CodeableConcept
}

// NewTimingBuilder creates an empty TimingBuilder.
func NewTimingBuilder() *TimingBuilder {
	b := &TimingBuilder{}
	b.self = b
	return b
}

// Event appends to Timing.event.
func (b *TimingBuilder) Event(event ...*DateTime) *TimingBuilder {
	b.event = append(b.event, event...)
	return b
}

// SetEvent replaces Timing.event.
func (b *TimingBuilder) SetEvent(event []*DateTime) *TimingBuilder {
	b.event = slices.Clone(event)
	return b
}

// Repeat sets Timing.repeat.
func (b *TimingBuilder) Repeat(repeat *TimingRepeat) *TimingBuilder {
	b.repeat = repeat
	return b
}

// Code sets Timing.code.
func (b *TimingBuilder) Code(code *CodeableConcept) *TimingBuilder {
	b.code = code
	return b
}

// From copies every element of src into the builder.
func (b *TimingBuilder) From(src *Timing) *TimingBuilder {
	b.fromBackbone(&src.backboneElement)
	b.event = slices.Clone(src.event)
	b.repeat = src.repeat
	b.code = src.code
	return b
}

// Build validates the builder state and returns a new Timing.
func (b *TimingBuilder) Build() (*Timing, error) {
	const typ = "Timing"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.CheckList(typ, "event", b.event),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &Timing{
		backboneElement: b.backbone(),
		event:           slices.Clone(b.event),
		repeat:          b.repeat,
		code:            b.code,
	}, nil
}

func (b *TimingBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		len(b.event) > 0 ||
		b.repeat != nil ||
		b.code != nil
}

// TimingRepeat describes when the event is to occur.
// It is the Timing.repeat element.
type TimingRepeat struct {
	element
	bounds       Element                `fhir:"bounds[x],summary,choice=Duration|Range|Period"`
	count        *PositiveInt           `fhir:"count,summary"`
	countMax     *PositiveInt           `fhir:"countMax,summary"`
	duration     *Decimal               `fhir:"duration,summary"`
	durationMax  *Decimal               `fhir:"durationMax,summary"`
	durationUnit *CodeOf[UnitsOfTime]   `fhir:"durationUnit,summary,binding=UnitsOfTime,strength=required,valueSet=http://hl7.org/fhir/ValueSet/units-of-time|4.0.1"`
	frequency    *PositiveInt           `fhir:"frequency,summary"`
	frequencyMax *PositiveInt           `fhir:"frequencyMax,summary"`
	period       *Decimal               `fhir:"period,summary"`
	periodMax    *Decimal               `fhir:"periodMax,summary"`
	periodUnit   *CodeOf[UnitsOfTime]   `fhir:"periodUnit,summary,binding=UnitsOfTime,strength=required,valueSet=http://hl7.org/fhir/ValueSet/units-of-time|4.0.1"`
	dayOfWeek    []*CodeOf[DayOfWeek]   `fhir:"dayOfWeek,summary,binding=DayOfWeek,strength=required,valueSet=http://hl7.org/fhir/ValueSet/days-of-week|4.0.1"`
	timeOfDay    []*Time                `fhir:"timeOfDay,summary"`
	when         []*CodeOf[EventTiming] `fhir:"when,summary,binding=EventTiming,strength=required,valueSet=http://hl7.org/fhir/ValueSet/event-timing|4.0.1"`
	offset       *UnsignedInt           `fhir:"offset,summary"`
}

// Bounds returns Timing.repeat.bounds[x]: *Duration, *Range or *Period.
func (t *TimingRepeat) Bounds() Element { return t.bounds }

// Count returns Timing.repeat.count.
func (t *TimingRepeat) Count() *PositiveInt { return t.count }

// CountMax returns Timing.repeat.countMax.
func (t *TimingRepeat) CountMax() *PositiveInt { return t.countMax }

// Duration returns Timing.repeat.duration.
func (t *TimingRepeat) Duration() *Decimal { return t.duration }

// DurationMax returns Timing.repeat.durationMax.
func (t *TimingRepeat) DurationMax() *Decimal { return t.durationMax }

// DurationUnit returns Timing.repeat.durationUnit.
func (t *TimingRepeat) DurationUnit() *CodeOf[UnitsOfTime] { return t.durationUnit }

// Frequency returns Timing.repeat.frequency.
func (t *TimingRepeat) Frequency() *PositiveInt { return t.frequency }

// FrequencyMax returns Timing.repeat.frequencyMax.
func (t *TimingRepeat) FrequencyMax() *PositiveInt { return t.frequencyMax }

// Period returns Timing.repeat.period.
func (t *TimingRepeat) Period() *Decimal { return t.period }

// PeriodMax returns Timing.repeat.periodMax.
func (t *TimingRepeat) PeriodMax() *Decimal { return t.periodMax }

// PeriodUnit returns Timing.repeat.periodUnit.
func (t *TimingRepeat) PeriodUnit() *CodeOf[UnitsOfTime] { return t.periodUnit }

// DayOfWeek returns Timing.repeat.dayOfWeek.
func (t *TimingRepeat) DayOfWeek() []*CodeOf[DayOfWeek] { return t.dayOfWeek }

// TimeOfDay returns Timing.repeat.timeOfDay.
func (t *TimingRepeat) TimeOfDay() []*Time { return t.timeOfDay }

// When returns Timing.repeat.when.
func (t *TimingRepeat) When() []*CodeOf[EventTiming] { return t.when }

// Offset returns Timing.repeat.offset.
func (t *TimingRepeat) Offset() *UnsignedInt { return t.offset }

// FHIRType returns "Element".
func (*TimingRepeat) FHIRType() string { return "Element" }

// Accept implements visitor.Visitable.
func (t *TimingRepeat) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if t == nil || !v.PreVisit(t) {
		return
	}
	v.VisitStart(elementName, elementIndex, t)
	if v.Visit(elementName, elementIndex, t) {
		t.acceptElement(v)
		accept(v, "bounds", t.bounds)
		accept(v, "count", t.count)
		accept(v, "countMax", t.countMax)
		accept(v, "duration", t.duration)
		accept(v, "durationMax", t.durationMax)
		accept(v, "durationUnit", t.durationUnit)
		accept(v, "frequency", t.frequency)
		accept(v, "frequencyMax", t.frequencyMax)
		accept(v, "period", t.period)
		accept(v, "periodMax", t.periodMax)
		accept(v, "periodUnit", t.periodUnit)
		acceptList(v, "dayOfWeek", t.dayOfWeek)
		acceptList(v, "timeOfDay", t.timeOfDay)
		acceptList(v, "when", t.when)
		accept(v, "offset", t.offset)
	}
	v.VisitEnd(elementName, elementIndex, t)
	v.PostVisit(t)
}

// Equal reports whether t and other are structurally equal.
func (t *TimingRepeat) Equal(other *TimingRepeat) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.equalElement(&other.element) &&
		equalBase(t.bounds, other.bounds) &&
		t.count.Equal(other.count) &&
		t.countMax.Equal(other.countMax) &&
		t.duration.Equal(other.duration) &&
		t.durationMax.Equal(other.durationMax) &&
		t.durationUnit.Equal(other.durationUnit) &&
		t.frequency.Equal(other.frequency) &&
		t.frequencyMax.Equal(other.frequencyMax) &&
		t.period.Equal(other.period) &&
		t.periodMax.Equal(other.periodMax) &&
		t.periodUnit.Equal(other.periodUnit) &&
		equalList(t.dayOfWeek, other.dayOfWeek) &&
		equalList(t.timeOfDay, other.timeOfDay) &&
		equalList(t.when, other.when) &&
		t.offset.Equal(other.offset)
}

func (t *TimingRepeat) equalBase(other Base) bool {
	o, ok := other.(*TimingRepeat)
	return ok && t.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of t.
func (t *TimingRepeat) ToBuilder() *TimingRepeatBuilder {
	return NewTimingRepeatBuilder().From(t)
}

// TimingRepeatBuilder builds TimingRepeat values.
type TimingRepeatBuilder struct {
	elementBuilder[*TimingRepeatBuilder]
	bounds       Element
	count        *PositiveInt
	countMax     *PositiveInt
	duration     *Decimal
	durationMax  *Decimal
	durationUnit *CodeOf[UnitsOfTime]
	frequency    *PositiveInt
	frequencyMax *PositiveInt
	period       *Decimal
	periodMax    *Decimal
	periodUnit   *CodeOf[UnitsOfTime]
	dayOfWeek    []*CodeOf[DayOfWeek]
	timeOfDay    []*Time
	when         []*CodeOf[EventTiming]
	offset       *UnsignedInt
}

// NewTimingRepeatBuilder creates an empty TimingRepeatBuilder.
func NewTimingRepeatBuilder() *TimingRepeatBuilder {
	b := &TimingRepeatBuilder{}
	b.self = b
	return b
}

// Bounds sets Timing.repeat.bounds[x].
func (b *TimingRepeatBuilder) Bounds(bounds Element) *TimingRepeatBuilder {
	b.bounds = bounds
	return b
}

// Count sets Timing.repeat.count.
func (b *TimingRepeatBuilder) Count(count *PositiveInt) *TimingRepeatBuilder {
	b.count = count
	return b
}

// CountMax sets Timing.repeat.countMax.
func (b *TimingRepeatBuilder) CountMax(countMax *PositiveInt) *TimingRepeatBuilder {
	b.countMax = countMax
	return b
}

// Duration sets Timing.repeat.duration.
func (b *TimingRepeatBuilder) Duration(duration *Decimal) *TimingRepeatBuilder {
	b.duration = duration
	return b
}

// DurationMax sets Timing.repeat.durationMax.
func (b *TimingRepeatBuilder) DurationMax(durationMax *Decimal) *TimingRepeatBuilder {
	b.durationMax = durationMax
	return b
}

// DurationUnit sets Timing.repeat.durationUnit.
func (b *TimingRepeatBuilder) DurationUnit(durationUnit *CodeOf[UnitsOfTime]) *TimingRepeatBuilder {
	b.durationUnit = durationUnit
	return b
}

// Frequency sets Timing.repeat.frequency.
func (b *TimingRepeatBuilder) Frequency(frequency *PositiveInt) *TimingRepeatBuilder {
	b.frequency = frequency
	return b
}

// FrequencyMax sets Timing.repeat.frequencyMax.
func (b *TimingRepeatBuilder) FrequencyMax(frequencyMax *PositiveInt) *TimingRepeatBuilder {
	b.frequencyMax = frequencyMax
	return b
}

// Period sets Timing.repeat.period.
func (b *TimingRepeatBuilder) Period(period *Decimal) *TimingRepeatBuilder {
	b.period = period
	return b
}

// PeriodMax sets Timing.repeat.periodMax.
func (b *TimingRepeatBuilder) PeriodMax(periodMax *Decimal) *TimingRepeatBuilder {
	b.periodMax = periodMax
	return b
}

// PeriodUnit sets Timing.repeat.periodUnit.
func (b *TimingRepeatBuilder) PeriodUnit(periodUnit *CodeOf[UnitsOfTime]) *TimingRepeatBuilder {
	b.periodUnit = periodUnit
	return b
}

// DayOfWeek appends to Timing.repeat.dayOfWeek.
func (b *TimingRepeatBuilder) DayOfWeek(dayOfWeek ...*CodeOf[DayOfWeek]) *TimingRepeatBuilder {
	b.dayOfWeek = append(b.dayOfWeek, dayOfWeek...)
	return b
}

// SetDayOfWeek replaces Timing.repeat.dayOfWeek.
func (b *TimingRepeatBuilder) SetDayOfWeek(dayOfWeek []*CodeOf[DayOfWeek]) *TimingRepeatBuilder {
	b.dayOfWeek = slices.Clone(dayOfWeek)
	return b
}

// TimeOfDay appends to Timing.repeat.timeOfDay.
func (b *TimingRepeatBuilder) TimeOfDay(timeOfDay ...*Time) *TimingRepeatBuilder {
	b.timeOfDay = append(b.timeOfDay, timeOfDay...)
	return b
}

// SetTimeOfDay replaces Timing.repeat.timeOfDay.
func (b *TimingRepeatBuilder) SetTimeOfDay(timeOfDay []*Time) *TimingRepeatBuilder {
	b.timeOfDay = slices.Clone(timeOfDay)
	return b
}

// When appends to Timing.repeat.when.
func (b *TimingRepeatBuilder) When(when ...*CodeOf[EventTiming]) *TimingRepeatBuilder {
	b.when = append(b.when, when...)
	return b
}

// SetWhen replaces Timing.repeat.when.
func (b *TimingRepeatBuilder) SetWhen(when []*CodeOf[EventTiming]) *TimingRepeatBuilder {
	b.when = slices.Clone(when)
	return b
}

// Offset sets Timing.repeat.offset.
func (b *TimingRepeatBuilder) Offset(offset *UnsignedInt) *TimingRepeatBuilder {
	b.offset = offset
	return b
}

// From copies every element of src into the builder.
func (b *TimingRepeatBuilder) From(src *TimingRepeat) *TimingRepeatBuilder {
	b.fromElement(&src.element)
	b.bounds = src.bounds
	b.count = src.count
	b.countMax = src.countMax
	b.duration = src.duration
	b.durationMax = src.durationMax
	b.durationUnit = src.durationUnit
	b.frequency = src.frequency
	b.frequencyMax = src.frequencyMax
	b.period = src.period
	b.periodMax = src.periodMax
	b.periodUnit = src.periodUnit
	b.dayOfWeek = slices.Clone(src.dayOfWeek)
	b.timeOfDay = slices.Clone(src.timeOfDay)
	b.when = slices.Clone(src.when)
	b.offset = src.offset
	return b
}

// Build validates the builder state and returns a new TimingRepeat.
func (b *TimingRepeatBuilder) Build() (*TimingRepeat, error) {
	const typ = "Timing.repeat"
	if err := validation.First(
		b.checkElement(typ),
		validation.Choice(typ, "bounds", b.bounds, "Duration", "Range", "Period"),
		validation.CheckCode(typ, "durationUnit", b.durationUnit),
		validation.CheckCode(typ, "periodUnit", b.periodUnit),
		validation.CheckList(typ, "dayOfWeek", b.dayOfWeek),
		validation.CheckCodes(typ, "dayOfWeek", b.dayOfWeek),
		validation.CheckList(typ, "timeOfDay", b.timeOfDay),
		validation.CheckList(typ, "when", b.when),
		validation.CheckCodes(typ, "when", b.when),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &TimingRepeat{
		element:      b.element(),
		bounds:       b.bounds,
		count:        b.count,
		countMax:     b.countMax,
		duration:     b.duration,
		durationMax:  b.durationMax,
		durationUnit: b.durationUnit,
		frequency:    b.frequency,
		frequencyMax: b.frequencyMax,
		period:       b.period,
		periodMax:    b.periodMax,
		periodUnit:   b.periodUnit,
		dayOfWeek:    slices.Clone(b.dayOfWeek),
		timeOfDay:    slices.Clone(b.timeOfDay),
		when:         slices.Clone(b.when),
		offset:       b.offset,
	}, nil
}

func (b *TimingRepeatBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		b.bounds != nil ||
		b.count != nil ||
		b.countMax != nil ||
		b.duration != nil ||
		b.durationMax != nil ||
		b.durationUnit != nil ||
		b.frequency != nil ||
		b.frequencyMax != nil ||
		b.period != nil ||
		b.periodMax != nil ||
		b.periodUnit != nil ||
		len(b.dayOfWeek) > 0 ||
		len(b.timeOfDay) > 0 ||
		len(b.when) > 0 ||
		b.offset != nil
}
