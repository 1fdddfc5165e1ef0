// Package memo implements lazily evaluated, memoized values.
//
// A computation is described by a [Memoizer]: the output type
// implements a Memoize method which derives itself from a parameter.
// The output is then wrapped in one of the cache types, which compute
// it on first access, cache it, and forget it when it is invalidated.
//
// The cache types do not allocate and do not dispatch through
// interface values; the computation is bound by type parameter.
// Allocation, if any, happens inside the user's Memoize method.
//
// Types:
//
//   - [Memo]
//
//     Owns the parameter. Changing the parameter is only possible
//     through methods that also discard the cached value.
//     The simplest and safest choice.
//
//   - [Ext]
//
//     Does not store the parameter; it is passed to every call
//     that may compute. The caller must call Clear whenever the
//     parameter changes.
//
//   - [Once]
//
//     References a parameter owned elsewhere, which must not be
//     modified while the Once is in use. Suited to a one-off value
//     used many times within a single scope.
//
// States:
//
//   - Stale
//
//     No value is cached. Every cache starts stale.
//
//   - Fresh
//
//     A value is cached and is returned without computing.
//
// Transitions:
//
//   - Get or Ready computes when stale, and does nothing when fresh.
//
//   - Update always computes, replacing any cached value.
//
//   - Clear, and for [Memo] any access to the parameter that permits
//     modification, makes the cache stale. The cache does not check
//     whether the parameter actually changed.
//
//   - TryGet, IsReady, and Param never change state or compute.
//
// Hazards:
//
//   - [Ext.Get] ignores its argument when a value is cached.
//     Passing a different parameter without calling [Ext.Clear]
//     first returns the value computed from the old one,
//     silently. This is not detected.
//
//   - [Once] cannot prevent its parameter from being modified
//     through another path. Building with `-tags memo_debug`
//     fingerprints the parameter at construction and panics
//     on access if it has changed since.
//
// Access is always explicit; no method computes implicitly
// (e.g. through [fmt.Stringer]). None of the types are safe
// for concurrent use.
package memo
