package simdops

// vertexComponents is the number of components per 2D vertex.
const vertexComponents = 2
