// Package token defines lexical token kinds and trivia for the Laye compiler.
// Invariants:
//   - Every Kind value is a real variant; the zero value is EOF, so an
//     "unset" kind cannot be represented.
//   - Token.Span covers exactly the token's source bytes; trivia is kept
//     separately in Leading and Trailing.
//   - Payload fields are meaningful only for their kind: Text for Ident and
//     StringLit, Int for IntLit, Float for FloatLit, Char for CharLit.
//   - Keywords are lexed as Ident; LookupKeyword classifies them on demand.
package token
