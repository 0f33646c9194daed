// Package ui hosts the Bubble Tea model for the overlay: panel lifecycle,
// key routing, the shop checkout flow, banking screens, and the toast stack.
// All state lives on the single Model; asynchronous work (host callbacks,
// balance fetches, animation and expiry timers) runs as commands that deliver
// typed messages back into Update.
package ui
