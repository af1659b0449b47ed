// Package wizard models navigation through the self-service request wizard.
//
// A session is a State value holding the current Step, its breadcrumb and
// the verified Identity. Navigator operations (Identify, Select, Back, Jump,
// Home, Reset) take a State and return the next one, so the state can travel
// with the client and the server keeps no session store. Allowed moves are
// declared once in a statemachine transition table: every move except
// Identify needs a verified identity, and a sub-section only opens from its
// parent menu or from a sibling.
package wizard
