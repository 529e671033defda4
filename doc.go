// Package uiconf reads declarative window descriptions.
//
// A document describes one window: a title, window properties and an ordered
// list of widgets (button, label, separator and nested layouts). Any leaf may
// be a literal or an `@name` reference into a datastore.Store, resolved every
// frame by the render package.
//
// Layout:
//   - reader: tape reader, decoder building blocks and the error taxonomy
//   - model: the typed document tree and its decoders
//   - binding: literal-or-reference values
//   - datastore: the typed field store references resolve against
//   - render: per-frame resolution into host UI calls
//   - cmd/uiconf: the CLI
//
// Typical usage:
//
//	root, err := uiconf.ParseFile("main.ui", uiconf.Options{Logger: logger})
//	store, err := datastore.Load("state.json")
//	render.Show(host, &root.Window, store)
package uiconf
