package ui

import (
	"context"
	"sync"

	"github.com/courtside/tennis-predictor/internal/models"
)

// fakeElement records classes, label, value and enablement.
type fakeElement struct {
	mu      sync.Mutex
	value   string
	label   string
	enabled bool
	classes map[string]bool
	// labels and enabled states in the order they were set
	labelLog   []string
	enabledLog []bool
}

func newFakeElement() *fakeElement {
	return &fakeElement{enabled: true, classes: map[string]bool{}}
}

func (f *fakeElement) Value() string        { return f.value }
func (f *fakeElement) SetValue(v string)    { f.value = v }
func (f *fakeElement) Contains(t any) bool { return t == f }

func (f *fakeElement) SetClass(name string, on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if on {
		f.classes[name] = true
	} else {
		delete(f.classes, name)
	}
}

func (f *fakeElement) HasClass(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.classes[name]
}

func (f *fakeElement) SetLabel(label string) {
	f.label = label
	f.labelLog = append(f.labelLog, label)
}

func (f *fakeElement) SetEnabled(enabled bool) {
	f.enabled = enabled
	f.enabledLog = append(f.enabledLog, enabled)
}

type fakePanel struct {
	visible bool
	items   []string
	pick    func(string)
}

func (p *fakePanel) Show(items []string, pick func(string)) {
	p.visible = true
	p.items = items
	p.pick = pick
}

func (p *fakePanel) Hide()                { p.visible = false }
func (p *fakePanel) Contains(t any) bool { return t == p }

type fakeAlerts struct {
	messages []string
}

func (a *fakeAlerts) Alert(msg string) { a.messages = append(a.messages, msg) }

type MockNames struct {
	PlayerNamesFunc func(ctx context.Context) ([]string, error)
	calls           int
}

func (m *MockNames) PlayerNames(ctx context.Context) ([]string, error) {
	m.calls++
	if m.PlayerNamesFunc != nil {
		return m.PlayerNamesFunc(ctx)
	}
	return nil, nil
}

type MockPredictor struct {
	PredictFunc func(ctx context.Context, req models.PredictionRequest) (*models.PredictionResult, error)
	Requests    []models.PredictionRequest
	// button is inspected while the request is in flight
	button    *fakeElement
	midLabel  string
	midEnable bool
}

func (m *MockPredictor) Predict(ctx context.Context, req models.PredictionRequest) (*models.PredictionResult, error) {
	m.Requests = append(m.Requests, req)
	if m.button != nil {
		m.midLabel = m.button.label
		m.midEnable = m.button.enabled
	}
	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, req)
	}
	return &models.PredictionResult{Winner: req.Player1}, nil
}

func namesOf(list ...string) *MockNames {
	return &MockNames{PlayerNamesFunc: func(ctx context.Context) ([]string, error) {
		return list, nil
	}}
}
