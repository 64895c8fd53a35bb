//go:build js && wasm

package main

import "syscall/js"

// element binds one DOM node to the ui view interfaces.
type element struct {
	v js.Value
}

func byID(id string) element {
	return element{v: js.Global().Get("document").Call("getElementById", id)}
}

func query(selector string) element {
	return element{v: js.Global().Get("document").Call("querySelector", selector)}
}

func (e element) Value() string     { return e.v.Get("value").String() }
func (e element) SetValue(v string) { e.v.Set("value", v) }

func (e element) SetClass(name string, on bool) {
	e.v.Get("classList").Call("toggle", name, on)
}

func (e element) Contains(target any) bool {
	t, ok := target.(js.Value)
	if !ok || t.IsNull() || t.IsUndefined() {
		return false
	}
	return e.v.Call("contains", t).Bool()
}

func (e element) SetLabel(label string)   { e.v.Set("textContent", label) }
func (e element) SetEnabled(enabled bool) { e.v.Set("disabled", !enabled) }

// on registers fn for event. The callback lives as long as the page.
func (e element) on(event string, fn func(this js.Value, args []js.Value) any) {
	e.v.Call("addEventListener", event, js.FuncOf(fn))
}

// panel is a suggestion list; rows are rebuilt on every Show.
type panel struct {
	element
	rows []js.Func
}

func newPanel(id string) *panel {
	return &panel{element: byID(id)}
}

func (p *panel) Show(items []string, pick func(string)) {
	p.release()
	p.v.Set("innerHTML", "")
	doc := js.Global().Get("document")
	for _, name := range items {
		row := doc.Call("createElement", "div")
		row.Set("textContent", name)
		fn := js.FuncOf(func(this js.Value, args []js.Value) any {
			pick(name)
			return nil
		})
		p.rows = append(p.rows, fn)
		row.Call("addEventListener", "click", fn)
		p.v.Call("appendChild", row)
	}
	p.v.Get("style").Set("display", "block")
}

func (p *panel) Hide() {
	p.v.Get("style").Set("display", "none")
}

func (p *panel) release() {
	for _, fn := range p.rows {
		fn.Release()
	}
	p.rows = p.rows[:0]
}

type alerter struct{}

func (alerter) Alert(msg string) {
	js.Global().Call("alert", msg)
}
