// Package session provides generic, token-keyed server-side sessions.
//
// A Session[Data] carries a stable ID, a random token used as the cookie value,
// the signed-in user (empty for anonymous visitors) and application data such
// as flash messages. Authenticate and Logout rotate the token; Manager.Store
// removes the replaced token from the Store so an old cookie cannot be replayed.
//
// Stores:
//
//   - MemoryStore: in-process map, suitable for a single instance and tests.
//   - Redis: see integration/database/redis.
//
// Basic usage:
//
//	store := session.NewMemoryStore[AppData]()
//	mgr := session.NewManager(store, session.WithTTL(24*time.Hour))
//
//	sess, _ := mgr.New(ctx, session.NewSessionParams{IP: ip})
//	_ = sess.Authenticate("admin")
//	saved, err := mgr.Store(ctx, sess)
//
// Sessions are touched (expiration extended) at most once per touch interval,
// which keeps store writes low for read-heavy traffic. Run CleanupExpired
// periodically for stores without native expiry.
package session
