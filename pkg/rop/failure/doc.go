// Package failure describes why an operation failed.
//
// A Description carries a Category, a title, a detail message and an optional
// underlying cause. Descriptions are immutable and are produced by a Builder,
// which resolves any combination of optional inputs into one deterministic
// description:
//
//   - category: explicit, else CheckedError when a cause was given, else Unspecified
//   - template: explicit, else the category's own template
//   - detail:   explicit detail, else the expanded explicit template, else the
//     cause's message, else the expanded category template
//   - title:    explicit, else the category's title
//
// A cause selects CheckedError whenever no category is set explicitly, even
// when a title, detail or template accompanies it.
//
// Example usage:
//
//	notFound := failure.NewCategory("Not found", "{} was not found in {}")
//
//	d := failure.NewBuilder().
//		Category(notFound).
//		Args("user 42", "the directory").
//		Build()
//
//	fmt.Println(d.Detail()) // user 42 was not found in the directory
//
// Convenience constructors (New, Newf, Titled, Categorized, Wrap, ...) cover
// the common shapes, and UserString/DebugString render descriptions for
// terminals and logs.
package failure
