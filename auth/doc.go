// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the console login gate and sessions.

# Login

The console has exactly one username/password pair, taken from
configuration. Gate.Verify waits a fixed delay, then compares both values:

	gate := auth.NewGate(cfg.AdminUsername, cfg.AdminPassword, cfg.LoginDelay, auth.NewSessions(store))
	session, err := gate.Login(ctx, username, password)

Login returns ErrInvalidCredentials on a mismatch. The credentials are
compared as plain strings; there is no hashing, lockout or expiry.

# Sessions

Each successful login writes the flag

	auth-flag:<token> = "true"

to the key-value store. Sessions.Lookup turns a token back into a Session,
and Gate.Logout deletes the flag. Unknown tokens yield a logged-out
session rather than an error.

A Session is passed explicitly to every page operation; Require returns
ErrUnauthenticated for logged-out callers:

	if err := session.Require(); err != nil {
		return err
	}

The HTTP middleware stores the request's session in its context
(WithSession / FromContext).

# ID Generation

GenerateID returns a random hex string and is used for session tokens.
*/
package auth
