// Package app is the composition root: it loads settings, signs the
// user in, opens the local event store, and hands everything to the
// UI.
//
// Startup order:
//
//  1. config.Load reads Settings.toml, writing a commented default
//     file on first run.
//  2. Debug logging goes to debug.log in the config directory when
//     enabled, otherwise log output is discarded so it cannot corrupt
//     the terminal UI.
//  3. auth.Authenticate produces an access token, reusing the stored
//     refresh token when possible and falling back to the browser
//     sign-in flow.
//  4. The calendar list comes from the local store when present so the
//     UI can draw immediately; a remote fetch fills and persists it
//     otherwise.
//  5. A background timer posts refresh nudges at the configured
//     interval; the UI decides whether a nudge triggers a fetch.
//
// Fatal errors (missing client_id, sign-in failure, unusable store)
// are returned to main. Everything after startup is recoverable and
// only logged.
package app
