package schedule

// The two embedded 16x16 seed templates. Their content is fixed
// configuration: '#' and '.' cells are key-independent structure, every
// other glyph resolves through the key-derived character map.

// TransposeTemplate seeds the automaton whose grid keys the permutation
// network and the XOR layer.
const TransposeTemplate = `P#O#N#M#L#K#J#I#
#L#K.J#I.H.G#F.H
Q.D#C#B#A#7#6#E#
#M.X#W.V.U.T.5#G
R.E.H#G.F#E.S#D.
#N#Y.T#S.R.D#4.F
S.F.I#3#2.Q#R#C.
#O.Z#U.7#Z#C.3#E
T#G#J.4.6#P.Q.B#
#P#2.V#5.Y#B.2.D
U.H#K.W.X#O#P.A.
#Q.3#L.M.N.A#Z.C
V.I.4#5.6#7.O#7.
#R.J.K#L.M.N.Y#B
W.S#T.U#V#W.X.6#
#X.Y.Z.2#3.4.5.A`

// ShiftTemplate seeds the companion automaton advanced in lockstep with
// the transpose automaton.
const ShiftTemplate = `.A#3.2#Z.Y#X.W#V
7.B.4.P#O.N.M#L.
#6#C#5#Q#3.2#Z.U
E.5#D.6.R#4#7.K#
#D.4#E.7.S#5.Y.T
F.C#3.F.A#T#6#J#
#Q#B.2.G#B.U#X.S
G#P.A.Z#H.C#V.I#
.R#O.7#Y.I#D.W#R
H.E#N.6#X.J.E#H.
#S.D#M.5#W.K#F.Q
I#F.C#L.4#V#L.G.
.T.A.B#K.3#U.M.P
J#G#H#I#J#2#T#N#
.U#V.W.X.Y.Z#S.O
K#L.M#N#O#P.Q#R.`
