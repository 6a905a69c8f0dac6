// Package emit renders descriptor sets as source text.
//
// A descriptor becomes one impl block:
//
//	impl<'a, __E> itemize::TryIntoItems<Foo, __E> for &'a str
//	where
//	    Foo: ::std::convert::TryFrom<&'a str>,
//	{
//	    type IntoIter = ...;
//
//	    fn try_into_items(self) -> Self::IntoIter {
//	        ...
//	    }
//	}
//
// Each target gets one file holding its impls in generation order. The
// package also writes a YAML manifest of what was generated and offers a
// structural dump for debugging the engine.
package emit
