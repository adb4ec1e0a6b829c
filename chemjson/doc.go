package chemjson

//Package chemjson serializes golewis molecules as JSON documents. Its planned use
//is the communication of golewis programs with independent programs, such as a 3D
//viewer, which can be written in languages other than Go. A document carries the
//atoms, each bond once, the central atom, the predicted geometry and, optionally,
//idealized coordinates plus the display radius and color of each atom.
//Errors are also serializable, so the other side can tell in which stage a
//formula was rejected.
