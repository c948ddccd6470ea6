package char

// Cluster is the ordered grapheme sequence carried by a literal
// expression node. Concatenated, the graphemes' renderings form the
// literal's text.
type Cluster struct {
	graphemes []*Grapheme
}

// NewCluster creates a cluster from the given graphemes.
func NewCluster(graphemes ...*Grapheme) *Cluster {
	return &Cluster{graphemes: graphemes}
}

// Graphemes returns the ordered graphemes of the cluster.
func (c *Cluster) Graphemes() []*Grapheme {
	return c.graphemes
}

// Append adds a grapheme to the end of the cluster.
func (c *Cluster) Append(g *Grapheme) {
	c.graphemes = append(c.graphemes, g)
}

// Size returns the number of graphemes in the cluster.
func (c *Cluster) Size() int {
	return len(c.graphemes)
}

// CharCount returns the number of characters in a single rendered
// occurrence of the whole cluster.
func (c *Cluster) CharCount(isNonASCIIEscaped bool) int {
	count := 0
	for _, g := range c.graphemes {
		count += g.CharCount(isNonASCIIEscaped)
	}
	return count
}
