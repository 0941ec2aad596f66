// Package core provides the widget and element framework interfaces and lifecycle.
//
// Widgets are immutable descriptions of part of the interface. Elements are
// widgets instantiated at a location in the tree; they keep identity across
// rebuilds and own any mutable State.
//
// # Host Widgets
//
// A [HostWidget] owns a single [dom.Node]. Every other widget kind composes
// host widgets, so the document mirrors the first-level host descendants of
// each host element. Node children are attached at the end of
// [BuildOwner.FlushBuild].
//
// # State
//
// Stateful widgets keep their mutable data in a struct embedding
// [StateBase]. SetState runs its callback and schedules the element for the
// next [BuildOwner.FlushBuild]; [Managed] wraps a single value the same
// way. [UseController] ties a disposable resource, such as a disclosure
// lifecycle, to the state that created it.
//
// [Observable] is the goroutine-safe value used for shared flags. Its
// listeners run synchronously on the writer.
//
// # Inherited Widgets
//
// An [InheritedWidget] publishes a value to its subtree. Descendants read it
// with [BuildContext.DependOnInherited] and rebuild when a replacement
// widget reports UpdateShouldNotify.
//
// # Errors
//
// A panic during Build is reported through the errors package and the
// element renders nothing. Panics whose value reports a contract violation,
// such as a disclosure part used outside its root, propagate to the caller.
package core
