////////////////////////////////////////////////////////////////////////////////
// Blago DAO: weighted-governance treasury contracts
////////////////////////////////////////////////////////////////////////////////

package main

// main is left empty on purpose. The wasm entrypoints live in
// exports_wasip1.go and the host runtime calls them directly; off-chain
// tooling lives under cmd/blagodao.
func main() {

}
