/*
Package observable implements Sequence, an indexed and mutable collection that notifies
callbacks whenever its content changes.

Three channels are available, each callback receives the sequence itself:

	OnElementInserted  (value, index)                after Add
	OnElementRemoved   (value, index)                after RemoveAt, Remove and for each element removed by Clear
	OnElementChanged   (newValue, oldValue, index)   after Set and Insert

Callbacks are called synchronously, in registration order, after the sequence has been updated.
Clear removes the elements from the last one to the first one so that the index passed to the
callbacks is always the position the element occupied just before its removal. Insert reports
through the element-changed channel, the old value being the element previously found at the
insertion index, and it does not accept Count() as an index.

Registering a callback returns a CallbackHandle that can be passed to RemoveCallback. A callback
registered while the callbacks of a channel are being called is not called for the ongoing
notification. Mutating a sequence from one of its own callbacks panics with an error wrapping
ErrReentrantMutation.

Equality (Equal) is shallow: two sequences are equal if they are the same sequence, or if they have
the same number of elements and the same Digest. The digest depends on the order of the elements.
*/
package observable
