// Package annot provides ready-made extensions of the repr algebra.
//
// Every type here is an repr.Annot built from the public repr API only;
// consumers see what they resolve to.
package annot
