package searcher

// Scores for terminal positions seen from the searching color

const Win = 100
const Loss = -Win
const Tie = 0

// NoMove is returned as the column when no legal move exists.
const NoMove = -1

// Unlimited disables the depth limit.
const Unlimited = 0
