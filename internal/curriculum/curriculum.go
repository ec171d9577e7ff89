// Package curriculum holds the CBSE syllabus for classes 9 through 12.
// Chapter ids and names follow the NCERT textbook ordering.
package curriculum

import "sort"

type Chapter struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Topics []string `json:"topics"`
}

type SubjectInfo struct {
	Name     string    `json:"name"`
	Chapters []Chapter `json:"chapters"`
}

var Curriculum = map[int]map[string]SubjectInfo{
	9: {
		"science": {
			Name: "Science",
			Chapters: []Chapter{
				{ID: 1, Name: "Matter in Our Surroundings", Topics: []string{"Physical nature of matter", "States of matter", "Evaporation", "Latent heat"}},
				{ID: 2, Name: "Is Matter Around Us Pure", Topics: []string{"Mixtures", "Solutions", "Colloids", "Separation techniques", "Physical and chemical changes"}},
				{ID: 3, Name: "Atoms and Molecules", Topics: []string{"Laws of chemical combination", "Dalton's atomic theory", "Atoms", "Molecules", "Molecular mass", "Mole concept"}},
				{ID: 4, Name: "Structure of the Atom", Topics: []string{"Thomson model", "Rutherford model", "Bohr model", "Atomic number", "Mass number", "Isotopes"}},
				{ID: 5, Name: "The Fundamental Unit of Life", Topics: []string{"Cell structure", "Prokaryotic vs Eukaryotic", "Cell organelles", "Plasma membrane", "Cell wall"}},
				{ID: 6, Name: "Tissues", Topics: []string{"Plant tissues", "Meristematic tissue", "Permanent tissue", "Animal tissues", "Epithelial", "Connective", "Muscular", "Nervous"}},
				{ID: 7, Name: "Motion", Topics: []string{"Uniform motion", "Non-uniform motion", "Velocity", "Acceleration", "Equations of motion", "Graphical representation"}},
				{ID: 8, Name: "Force and Laws of Motion", Topics: []string{"Newton's first law", "Newton's second law", "Newton's third law", "Momentum", "Conservation of momentum"}},
				{ID: 9, Name: "Gravitation", Topics: []string{"Universal law of gravitation", "Free fall", "Weight vs Mass", "Pressure", "Thrust", "Buoyancy", "Archimedes principle"}},
				{ID: 10, Name: "Work and Energy", Topics: []string{"Work done", "Energy types", "Kinetic energy", "Potential energy", "Power", "Conservation of energy"}},
				{ID: 11, Name: "Sound", Topics: []string{"Wave motion", "Characteristics of sound", "Speed of sound", "Reflection of sound", "Echo", "Ultrasound", "SONAR"}},
				{ID: 12, Name: "Improvement in Food Resources", Topics: []string{"Crop production", "Manure and fertilizers", "Irrigation", "Crop protection", "Animal husbandry"}},
			},
		},
		"maths": {
			Name: "Mathematics",
			Chapters: []Chapter{
				{ID: 1, Name: "Number Systems", Topics: []string{"Irrational numbers", "Real numbers", "Decimal expansions", "Number line", "Laws of exponents"}},
				{ID: 2, Name: "Polynomials", Topics: []string{"Degree", "Zeroes of polynomial", "Remainder theorem", "Factor theorem", "Algebraic identities"}},
				{ID: 3, Name: "Coordinate Geometry", Topics: []string{"Cartesian system", "Quadrants", "Plotting points", "Linear equations as lines"}},
				{ID: 4, Name: "Linear Equations in Two Variables", Topics: []string{"Solutions", "Graphical method", "Equations of axes", "Word problems"}},
				{ID: 5, Name: "Introduction to Euclid's Geometry", Topics: []string{"Euclid's definitions", "Axioms", "Postulates", "Theorems"}},
				{ID: 6, Name: "Lines and Angles", Topics: []string{"Types of angles", "Parallel lines", "Transversal", "Angle sum property"}},
				{ID: 7, Name: "Triangles", Topics: []string{"Congruence criteria (SAS, ASA, SSS, RHS)", "Properties of triangles", "Inequalities in triangles"}},
				{ID: 8, Name: "Quadrilaterals", Topics: []string{"Types of quadrilaterals", "Properties of parallelogram", "Mid-point theorem"}},
				{ID: 9, Name: "Circles", Topics: []string{"Circle terms", "Chord properties", "Angle subtended by chord", "Cyclic quadrilateral"}},
				{ID: 10, Name: "Heron's Formula", Topics: []string{"Area of triangle using sides", "Area of quadrilateral"}},
				{ID: 11, Name: "Surface Areas and Volumes", Topics: []string{"Cuboid", "Cube", "Right circular cylinder", "Right circular cone", "Sphere"}},
				{ID: 12, Name: "Statistics", Topics: []string{"Collection of data", "Presentation of data", "Mean", "Median", "Mode", "Bar graphs", "Histograms", "Frequency polygons"}},
				{ID: 13, Name: "Probability", Topics: []string{"Empirical probability", "Experiments", "Events", "Probability formula"}},
			},
		},
	},
	10: {
		"science": {
			Name: "Science",
			Chapters: []Chapter{
				{ID: 1, Name: "Chemical Reactions and Equations", Topics: []string{"Balancing chemical equations", "Types of reactions", "Oxidation and reduction", "Corrosion", "Rancidity"}},
				{ID: 2, Name: "Acids, Bases and Salts", Topics: []string{"Properties of acids/bases", "pH scale", "Indicators", "Common salts", "Preparation of salts"}},
				{ID: 3, Name: "Metals and Non-metals", Topics: []string{"Physical properties", "Chemical properties", "Reactivity series", "Extraction of metals", "Corrosion prevention"}},
				{ID: 4, Name: "Carbon and its Compounds", Topics: []string{"Bonding in carbon", "Hydrocarbons", "Functional groups", "Homologous series", "Nomenclature", "Chemical reactions"}},
				{ID: 5, Name: "Life Processes", Topics: []string{"Nutrition", "Respiration", "Transportation in plants and animals", "Excretion"}},
				{ID: 6, Name: "Control and Coordination", Topics: []string{"Nervous system", "Reflex action", "Human brain", "Endocrine system", "Plant hormones"}},
				{ID: 7, Name: "How do Organisms Reproduce?", Topics: []string{"Asexual reproduction", "Sexual reproduction in plants", "Sexual reproduction in humans", "Contraception"}},
				{ID: 8, Name: "Heredity", Topics: []string{"Mendel's laws", "Dominant and recessive traits", "Sex determination", "Evolution", "Natural selection"}},
				{ID: 9, Name: "Light – Reflection and Refraction", Topics: []string{"Laws of reflection", "Spherical mirrors", "Mirror formula", "Laws of refraction", "Lenses", "Lens formula", "Power of lens"}},
				{ID: 10, Name: "Human Eye and the Colourful World", Topics: []string{"Eye structure and working", "Defects of vision", "Refraction by prism", "Dispersion", "Atmospheric refraction"}},
				{ID: 11, Name: "Electricity", Topics: []string{"Ohm's law", "Resistance", "Series and parallel circuits", "Heating effect", "Electric power"}},
				{ID: 12, Name: "Magnetic Effects of Electric Current", Topics: []string{"Magnetic field", "Electromagnet", "Force on current-carrying conductor", "Electric motor", "Electromagnetic induction", "Electric generator"}},
				{ID: 13, Name: "Our Environment", Topics: []string{"Ecosystem", "Food chains and webs", "Ozone layer depletion", "Management of garbage"}},
			},
		},
		"maths": {
			Name: "Mathematics",
			Chapters: []Chapter{
				{ID: 1, Name: "Real Numbers", Topics: []string{"Euclid's division algorithm", "Fundamental theorem of arithmetic", "Irrational numbers", "Rational numbers as decimals"}},
				{ID: 2, Name: "Polynomials", Topics: []string{"Zeroes and coefficients relationship", "Division algorithm for polynomials"}},
				{ID: 3, Name: "Pair of Linear Equations in Two Variables", Topics: []string{"Graphical method", "Substitution method", "Elimination method", "Cross-multiplication", "Reducible equations"}},
				{ID: 4, Name: "Quadratic Equations", Topics: []string{"Standard form", "Factorisation method", "Completing the square", "Quadratic formula", "Nature of roots"}},
				{ID: 5, Name: "Arithmetic Progressions", Topics: []string{"AP definition", "nth term formula", "Sum of n terms", "Applications"}},
				{ID: 6, Name: "Triangles", Topics: []string{"Similarity criteria (AA, SSS, SAS)", "Areas of similar triangles", "Pythagoras theorem", "Converse of Pythagoras"}},
				{ID: 7, Name: "Coordinate Geometry", Topics: []string{"Distance formula", "Section formula", "Midpoint formula", "Area of triangle using coordinates"}},
				{ID: 8, Name: "Introduction to Trigonometry", Topics: []string{"Trigonometric ratios", "Values of specific angles", "Trigonometric identities", "Complementary angles"}},
				{ID: 9, Name: "Some Applications of Trigonometry", Topics: []string{"Heights and distances", "Angle of elevation", "Angle of depression"}},
				{ID: 10, Name: "Circles", Topics: []string{"Tangent to a circle", "Number of tangents from a point", "Length of tangent"}},
				{ID: 11, Name: "Areas Related to Circles", Topics: []string{"Perimeter and area of circle", "Area of sector", "Area of segment", "Combinations of figures"}},
				{ID: 12, Name: "Surface Areas and Volumes", Topics: []string{"Combination of solids", "Conversion of solids", "Frustum of a cone"}},
				{ID: 13, Name: "Statistics", Topics: []string{"Mean by different methods", "Mode", "Median", "Cumulative frequency", "Ogive"}},
				{ID: 14, Name: "Probability", Topics: []string{"Classical definition", "Sample space", "Events", "Complementary events"}},
			},
		},
	},
	11: {
		"physics": {
			Name: "Physics",
			Chapters: []Chapter{
				{ID: 1, Name: "Physical World", Topics: []string{"Scope of physics", "Scientific method", "Fundamental forces"}},
				{ID: 2, Name: "Units and Measurement", Topics: []string{"SI units", "Dimensional analysis", "Significant figures", "Errors in measurement"}},
				{ID: 3, Name: "Motion in a Straight Line", Topics: []string{"Position and displacement", "Uniform motion", "Non-uniform motion", "Velocity", "Acceleration", "Kinematic equations", "Free fall"}},
				{ID: 4, Name: "Motion in a Plane", Topics: []string{"Scalars and vectors", "Vector operations", "Projectile motion", "Uniform circular motion", "Relative velocity"}},
				{ID: 5, Name: "Laws of Motion", Topics: []string{"Newton's laws", "Inertia", "Momentum", "Friction", "Circular dynamics"}},
				{ID: 6, Name: "Work, Energy and Power", Topics: []string{"Work-energy theorem", "Potential energy", "Conservation of energy", "Power", "Collisions"}},
				{ID: 7, Name: "System of Particles and Rotational Motion", Topics: []string{"Centre of mass", "Torque", "Angular momentum", "Moment of inertia", "Rolling motion"}},
				{ID: 8, Name: "Gravitation", Topics: []string{"Kepler's laws", "Universal gravitation", "Gravitational potential energy", "Orbital velocity", "Escape velocity", "Satellites"}},
				{ID: 9, Name: "Mechanical Properties of Solids", Topics: []string{"Elasticity", "Stress and strain", "Hooke's law", "Young's modulus", "Bulk modulus", "Shear modulus"}},
				{ID: 10, Name: "Mechanical Properties of Fluids", Topics: []string{"Pressure", "Pascal's law", "Archimedes' principle", "Viscosity", "Surface tension", "Bernoulli's principle"}},
				{ID: 11, Name: "Thermal Properties of Matter", Topics: []string{"Temperature", "Thermal expansion", "Specific heat", "Calorimetry", "Heat transfer modes"}},
				{ID: 12, Name: "Thermodynamics", Topics: []string{"Thermal equilibrium", "Zeroth law", "First law", "Second law", "Heat engines", "Carnot cycle"}},
				{ID: 13, Name: "Kinetic Theory", Topics: []string{"Gas laws", "Kinetic theory of gases", "RMS speed", "Degrees of freedom", "Mean free path"}},
				{ID: 14, Name: "Oscillations", Topics: []string{"SHM", "Equations of SHM", "Spring-mass system", "Simple pendulum", "Damped oscillations", "Resonance"}},
				{ID: 15, Name: "Waves", Topics: []string{"Wave motion", "Transverse and longitudinal waves", "Speed of wave", "Principle of superposition", "Standing waves", "Beats", "Doppler effect"}},
			},
		},
		"chemistry": {
			Name: "Chemistry",
			Chapters: []Chapter{
				{ID: 1, Name: "Some Basic Concepts of Chemistry", Topics: []string{"Matter", "Atomic mass", "Mole concept", "Empirical and molecular formula", "Stoichiometry"}},
				{ID: 2, Name: "Structure of Atom", Topics: []string{"Discovery of electron/proton/neutron", "Bohr's model", "Quantum numbers", "Aufbau principle", "Electronic configuration"}},
				{ID: 3, Name: "Classification of Elements and Periodicity", Topics: []string{"Periodic law", "Modern periodic table", "Periodic trends in properties"}},
				{ID: 4, Name: "Chemical Bonding and Molecular Structure", Topics: []string{"Ionic bond", "Covalent bond", "VSEPR theory", "Hybridization", "Hydrogen bonding"}},
				{ID: 5, Name: "Thermodynamics", Topics: []string{"System and surroundings", "Enthalpy", "Hess's law", "Entropy", "Gibbs free energy", "Spontaneity"}},
				{ID: 6, Name: "Equilibrium", Topics: []string{"Chemical equilibrium", "Equilibrium constant", "Le Chatelier's principle", "Ionic equilibrium", "pH calculations", "Buffer solutions"}},
				{ID: 7, Name: "Redox Reactions", Topics: []string{"Oxidation number", "Oxidation and reduction", "Balancing redox equations", "Electrochemical series"}},
				{ID: 8, Name: "Organic Chemistry – Basic Principles", Topics: []string{"IUPAC nomenclature", "Isomerism", "Inductive effect", "Resonance", "Hyperconjugation", "Reaction mechanisms"}},
				{ID: 9, Name: "Hydrocarbons", Topics: []string{"Alkanes", "Alkenes", "Alkynes", "Aromatic hydrocarbons", "Reactions"}},
				{ID: 10, Name: "The s-Block Elements", Topics: []string{"Alkali metals properties", "Alkaline earth metals", "Biological importance", "Compounds and uses"}},
				{ID: 11, Name: "The p-Block Elements", Topics: []string{"Group 13 elements (Boron family)", "Group 14 elements (Carbon family)", "Allotropes", "Important compounds"}},
				{ID: 12, Name: "Environmental Chemistry", Topics: []string{"Atmospheric pollution", "Water pollution", "Soil pollution", "Industrial waste", "Green chemistry"}},
			},
		},
		"maths": {
			Name: "Mathematics",
			Chapters: []Chapter{
				{ID: 1, Name: "Sets", Topics: []string{"Types of sets", "Set operations", "Venn diagrams", "De Morgan's laws", "Cartesian product"}},
				{ID: 2, Name: "Relations and Functions", Topics: []string{"Ordered pairs", "Types of relations", "Types of functions", "Domain and range"}},
				{ID: 3, Name: "Trigonometric Functions", Topics: []string{"Radian measure", "Trigonometric functions", "Graphs", "Identities", "Trigonometric equations"}},
				{ID: 4, Name: "Complex Numbers and Quadratic Equations", Topics: []string{"Complex numbers", "Argand plane", "Modulus and argument", "Quadratic equations with complex roots"}},
				{ID: 5, Name: "Linear Inequalities", Topics: []string{"Algebraic solutions", "Graphical method", "System of linear inequalities"}},
				{ID: 6, Name: "Permutations and Combinations", Topics: []string{"Fundamental counting principle", "Permutations", "Combinations", "Word problems"}},
				{ID: 7, Name: "Binomial Theorem", Topics: []string{"Binomial expansion", "General term", "Middle term", "Properties of binomial coefficients"}},
				{ID: 8, Name: "Sequences and Series", Topics: []string{"AP", "GP", "Relationship between AM and GM", "Sum of special series"}},
				{ID: 9, Name: "Straight Lines", Topics: []string{"Slope", "Various forms of equation", "Distance from point to line", "Angle between lines"}},
				{ID: 10, Name: "Conic Sections", Topics: []string{"Circle", "Parabola", "Ellipse", "Hyperbola", "Standard equations"}},
				{ID: 11, Name: "Introduction to 3D Geometry", Topics: []string{"Coordinate axes and planes", "Coordinates of a point", "Distance formula", "Section formula"}},
				{ID: 12, Name: "Limits and Derivatives", Topics: []string{"Intuitive idea of limit", "Algebra of limits", "Limits of trigonometric functions", "Derivatives", "Algebra of derivatives"}},
				{ID: 13, Name: "Statistics", Topics: []string{"Measures of dispersion", "Range", "Mean deviation", "Variance", "Standard deviation"}},
				{ID: 14, Name: "Probability", Topics: []string{"Random experiment", "Sample space", "Events", "Axiomatic probability", "Mutually exclusive events"}},
			},
		},
		"biology": {
			Name: "Biology",
			Chapters: []Chapter{
				{ID: 1, Name: "The Living World", Topics: []string{"Biodiversity", "Classification", "Nomenclature", "Taxonomic categories", "Taxonomical aids"}},
				{ID: 2, Name: "Biological Classification", Topics: []string{"Five kingdom classification", "Monera", "Protista", "Fungi", "Viruses and lichens"}},
				{ID: 3, Name: "Plant Kingdom", Topics: []string{"Algae", "Bryophytes", "Pteridophytes", "Gymnosperms", "Angiosperms", "Plant life cycles"}},
				{ID: 4, Name: "Animal Kingdom", Topics: []string{"Basis of classification", "Major phyla characteristics", "Vertebrates classification"}},
				{ID: 5, Name: "Morphology of Flowering Plants", Topics: []string{"Root", "Stem", "Leaf", "Inflorescence", "Flower", "Fruit", "Seed"}},
				{ID: 6, Name: "Anatomy of Flowering Plants", Topics: []string{"Tissue systems", "Anatomy of root/stem/leaf", "Secondary growth"}},
				{ID: 7, Name: "Structural Organisation in Animals", Topics: []string{"Tissues", "Organs", "Earthworm anatomy", "Cockroach anatomy", "Frog anatomy"}},
				{ID: 8, Name: "Cell: The Unit of Life", Topics: []string{"Cell theory", "Prokaryotic cell", "Eukaryotic cell", "Cell organelles in detail"}},
				{ID: 9, Name: "Biomolecules", Topics: []string{"Carbohydrates", "Proteins", "Lipids", "Nucleic acids", "Enzymes"}},
				{ID: 10, Name: "Cell Cycle and Cell Division", Topics: []string{"Cell cycle phases", "Mitosis", "Meiosis", "Significance"}},
				{ID: 11, Name: "Photosynthesis in Higher Plants", Topics: []string{"Light reactions", "Calvin cycle", "C4 pathway", "Photorespiration", "Factors affecting photosynthesis"}},
				{ID: 12, Name: "Respiration in Plants", Topics: []string{"Glycolysis", "Fermentation", "Aerobic respiration", "Krebs cycle", "Electron transport chain"}},
				{ID: 13, Name: "Plant Growth and Development", Topics: []string{"Growth phases", "Plant growth regulators", "Photoperiodism", "Vernalisation"}},
				{ID: 14, Name: "Digestion and Absorption", Topics: []string{"Digestive system", "Digestion in mouth/stomach/intestine", "Absorption", "Disorders"}},
				{ID: 15, Name: "Breathing and Exchange of Gases", Topics: []string{"Respiratory organs", "Breathing mechanism", "Exchange of gases", "Transport of gases", "Disorders"}},
				{ID: 16, Name: "Body Fluids and Circulation", Topics: []string{"Blood composition", "Blood groups", "Cardiac cycle", "ECG", "Lymph", "Disorders"}},
				{ID: 17, Name: "Excretory Products and their Elimination", Topics: []string{"Nephron structure", "Urine formation", "Tubular reabsorption", "Dialysis", "Disorders"}},
				{ID: 18, Name: "Locomotion and Movement", Topics: []string{"Types of movement", "Muscle types", "Skeletal system", "Joints", "Disorders"}},
				{ID: 19, Name: "Neural Control and Coordination", Topics: []string{"Neuron structure", "Nerve impulse", "CNS", "PNS", "Reflex action", "Sense organs"}},
				{ID: 20, Name: "Chemical Coordination and Integration", Topics: []string{"Endocrine glands", "Hormones and their functions", "Disorders"}},
			},
		},
	},
	12: {
		"physics": {
			Name: "Physics",
			Chapters: []Chapter{
				{ID: 1, Name: "Electric Charges and Fields", Topics: []string{"Coulomb's law", "Superposition principle", "Electric field", "Electric field lines", "Electric flux", "Gauss's law"}},
				{ID: 2, Name: "Electrostatic Potential and Capacitance", Topics: []string{"Electric potential", "Potential due to point charge", "Capacitors", "Dielectrics", "Energy stored in capacitor"}},
				{ID: 3, Name: "Current Electricity", Topics: []string{"Drift velocity", "Ohm's law", "Resistivity", "Kirchhoff's laws", "Wheatstone bridge", "Potentiometer"}},
				{ID: 4, Name: "Moving Charges and Magnetism", Topics: []string{"Magnetic force", "Biot-Savart law", "Ampere's law", "Solenoid", "Cyclotron"}},
				{ID: 5, Name: "Magnetism and Matter", Topics: []string{"Bar magnet", "Earth's magnetism", "Magnetization", "Dia/Para/Ferromagnetic materials"}},
				{ID: 6, Name: "Electromagnetic Induction", Topics: []string{"Faraday's laws", "Lenz's law", "Motional EMF", "Eddy currents", "Inductance"}},
				{ID: 7, Name: "Alternating Current", Topics: []string{"AC voltage", "Impedance", "LC oscillations", "Series LCR circuit", "Resonance", "Power in AC", "Transformer"}},
				{ID: 8, Name: "Electromagnetic Waves", Topics: []string{"Displacement current", "Maxwell's equations", "EM spectrum", "Properties of EM waves"}},
				{ID: 9, Name: "Ray Optics and Optical Instruments", Topics: []string{"Reflection", "Refraction", "Total internal reflection", "Lenses", "Microscope", "Telescope"}},
				{ID: 10, Name: "Wave Optics", Topics: []string{"Huygens principle", "Young's double slit experiment", "Interference", "Diffraction", "Polarisation"}},
				{ID: 11, Name: "Dual Nature of Radiation and Matter", Topics: []string{"Photoelectric effect", "Einstein's photoelectric equation", "de Broglie wavelength", "Davisson-Germer experiment"}},
				{ID: 12, Name: "Atoms", Topics: []string{"Rutherford's model", "Bohr's model", "Energy levels", "Hydrogen spectrum", "Spectral series"}},
				{ID: 13, Name: "Nuclei", Topics: []string{"Atomic masses", "Nuclear binding energy", "Radioactivity", "Nuclear fission", "Nuclear fusion", "Nuclear reactor"}},
				{ID: 14, Name: "Semiconductor Electronics", Topics: []string{"Energy bands", "p-n junction diode", "Rectifiers", "Transistor", "Logic gates", "Integrated circuits"}},
			},
		},
		"chemistry": {
			Name: "Chemistry",
			Chapters: []Chapter{
				{ID: 1, Name: "The Solid State", Topics: []string{"Amorphous and crystalline solids", "Crystal systems", "Packing efficiency", "Ionic radii", "Point defects"}},
				{ID: 2, Name: "Solutions", Topics: []string{"Types of solutions", "Expressing concentration", "Vapour pressure", "Colligative properties", "Van't Hoff factor"}},
				{ID: 3, Name: "Electrochemistry", Topics: []string{"Electrochemical cells", "Galvanic cell", "Nernst equation", "Conductance", "Faraday's laws of electrolysis", "Corrosion"}},
				{ID: 4, Name: "Chemical Kinetics", Topics: []string{"Rate of reaction", "Factors affecting rate", "Rate law", "Order of reaction", "Integrated rate equations", "Activation energy", "Arrhenius equation"}},
				{ID: 5, Name: "Surface Chemistry", Topics: []string{"Adsorption", "Catalysis", "Colloids", "Classification of colloids", "Preparation and properties"}},
				{ID: 6, Name: "General Principles of Isolation of Elements", Topics: []string{"Occurrence of metals", "Concentration of ores", "Extraction methods", "Refining", "Thermodynamic principles"}},
				{ID: 7, Name: "The p-Block Elements", Topics: []string{"Group 15 (Nitrogen family)", "Group 16 (Oxygen family)", "Group 17 (Halogen family)", "Group 18 (Noble gases)", "Oxyacids"}},
				{ID: 8, Name: "The d and f Block Elements", Topics: []string{"Transition metals", "Properties of transition metals", "Important compounds", "Lanthanides", "Actinides"}},
				{ID: 9, Name: "Coordination Compounds", Topics: []string{"Ligands", "IUPAC nomenclature", "Isomerism", "Crystal field theory", "Stability constants"}},
				{ID: 10, Name: "Haloalkanes and Haloarenes", Topics: []string{"Classification", "Nomenclature", "Preparation", "Properties", "SN1 and SN2 reactions", "Environmental effects"}},
				{ID: 11, Name: "Alcohols, Phenols and Ethers", Topics: []string{"Classification", "Preparation", "Physical properties", "Chemical reactions", "Important uses"}},
				{ID: 12, Name: "Aldehydes, Ketones and Carboxylic Acids", Topics: []string{"Preparation", "Nucleophilic addition", "Oxidation/reduction", "Aldol condensation", "Acidity of carboxylic acids"}},
				{ID: 13, Name: "Amines", Topics: []string{"Classification", "Structure", "Preparation", "Properties", "Diazonium salts", "Coupling reactions"}},
				{ID: 14, Name: "Biomolecules", Topics: []string{"Carbohydrates", "Proteins", "Enzymes", "Vitamins", "Nucleic acids", "Hormones"}},
				{ID: 15, Name: "Polymers", Topics: []string{"Classification", "Methods of polymerisation", "Molecular mass", "Biodegradable polymers", "Commercial polymers"}},
				{ID: 16, Name: "Chemistry in Everyday Life", Topics: []string{"Drugs and medicines", "Chemicals in food", "Cleansing agents"}},
			},
		},
		"maths": {
			Name: "Mathematics",
			Chapters: []Chapter{
				{ID: 1, Name: "Relations and Functions", Topics: []string{"Types of relations", "Types of functions", "Composition of functions", "Inverse functions", "Binary operations"}},
				{ID: 2, Name: "Inverse Trigonometric Functions", Topics: []string{"Domain and range", "Properties", "Graphs", "Formulae and applications"}},
				{ID: 3, Name: "Matrices", Topics: []string{"Types of matrices", "Matrix operations", "Transpose", "Symmetric matrices", "Inverse of matrix"}},
				{ID: 4, Name: "Determinants", Topics: []string{"Properties of determinants", "Cofactors and adjoint", "Inverse using adjoint", "Solution of equations", "Area of triangle"}},
				{ID: 5, Name: "Continuity and Differentiability", Topics: []string{"Continuity", "Differentiability", "Chain rule", "Implicit differentiation", "Rolle's theorem", "Mean value theorem"}},
				{ID: 6, Name: "Application of Derivatives", Topics: []string{"Rate of change", "Increasing/decreasing functions", "Tangents and normals", "Maxima and minima", "Approximations"}},
				{ID: 7, Name: "Integrals", Topics: []string{"Integration by substitution", "Integration by parts", "Integration by partial fractions", "Definite integrals", "Fundamental theorem"}},
				{ID: 8, Name: "Application of Integrals", Topics: []string{"Area under simple curves", "Area between curves"}},
				{ID: 9, Name: "Differential Equations", Topics: []string{"Order and degree", "Variable separable method", "Homogeneous differential equations", "Linear differential equations"}},
				{ID: 10, Name: "Vector Algebra", Topics: []string{"Types of vectors", "Addition and multiplication", "Dot product", "Cross product", "Scalar triple product"}},
				{ID: 11, Name: "Three Dimensional Geometry", Topics: []string{"Direction cosines", "Equation of line", "Plane", "Angle between line and plane", "Distance from point to plane"}},
				{ID: 12, Name: "Linear Programming", Topics: []string{"Linear programming problem", "Feasible region", "Graphical method", "Corner point theorem"}},
				{ID: 13, Name: "Probability", Topics: []string{"Conditional probability", "Multiplication theorem", "Bayes' theorem", "Random variables", "Probability distributions", "Binomial distribution"}},
			},
		},
		"biology": {
			Name: "Biology",
			Chapters: []Chapter{
				{ID: 1, Name: "Reproduction in Organisms", Topics: []string{"Modes of asexual reproduction", "Sexual reproduction", "Pre and post fertilisation events"}},
				{ID: 2, Name: "Sexual Reproduction in Flowering Plants", Topics: []string{"Flower structure", "Microsporogenesis", "Megasporogenesis", "Pollination", "Fertilisation", "Fruits and seeds"}},
				{ID: 3, Name: "Human Reproduction", Topics: []string{"Male reproductive system", "Female reproductive system", "Gametogenesis", "Fertilisation", "Pregnancy", "Parturition"}},
				{ID: 4, Name: "Reproductive Health", Topics: []string{"Population explosion", "Contraception", "STDs", "Infertility", "ART techniques"}},
				{ID: 5, Name: "Principles of Inheritance and Variation", Topics: []string{"Mendel's laws", "Chromosomal theory", "Linkage", "Sex determination", "Mutation", "Genetic disorders"}},
				{ID: 6, Name: "Molecular Basis of Inheritance", Topics: []string{"DNA structure", "DNA replication", "Transcription", "Genetic code", "Translation", "Gene expression regulation"}},
				{ID: 7, Name: "Evolution", Topics: []string{"Origin of life", "Theories of evolution", "Darwin's theory", "Natural selection", "Speciation", "Human evolution"}},
				{ID: 8, Name: "Human Health and Disease", Topics: []string{"Common diseases", "Immunity", "Vaccination", "AIDS", "Cancer", "Drug and alcohol abuse"}},
				{ID: 9, Name: "Strategies for Enhancement in Food Production", Topics: []string{"Plant breeding", "Mutation breeding", "Animal husbandry", "Single cell protein", "Tissue culture"}},
				{ID: 10, Name: "Microbes in Human Welfare", Topics: []string{"Microbes in household products", "Industrial microbiology", "Biogas production", "Biocontrol agents", "Biofertilisers"}},
				{ID: 11, Name: "Biotechnology: Principles and Processes", Topics: []string{"Recombinant DNA technology", "PCR", "Gel electrophoresis", "Cloning vectors", "Competent host"}},
				{ID: 12, Name: "Biotechnology and its Applications", Topics: []string{"Insulin production", "Gene therapy", "Bt crops", "RNAi", "Bioethics", "Biopiracy"}},
				{ID: 13, Name: "Organisms and Populations", Topics: []string{"Habitat and niche", "Population attributes", "Population growth models", "Life history variation", "Population interactions"}},
				{ID: 14, Name: "Ecosystem", Topics: []string{"Ecosystem structure", "Productivity", "Decomposition", "Energy flow", "Nutrient cycling", "Ecosystem services"}},
				{ID: 15, Name: "Biodiversity and Conservation", Topics: []string{"Biodiversity types", "Importance", "Loss of biodiversity", "Conservation strategies", "Hotspots", "Red data book"}},
				{ID: 16, Name: "Environmental Issues", Topics: []string{"Air pollution", "Water pollution", "Solid waste management", "Deforestation", "Greenhouse effect", "Ozone depletion"}},
			},
		},
	},
}

// SubjectsForClass returns the subject keys offered for a class, sorted for
// stable responses.
func SubjectsForClass(classNum int) []string {
	classData, ok := Curriculum[classNum]
	if !ok {
		return nil
	}
	subjects := make([]string, 0, len(classData))
	for key := range classData {
		subjects = append(subjects, key)
	}
	sort.Strings(subjects)
	return subjects
}

func GetSubjectInfo(classNum int, subject string) (SubjectInfo, bool) {
	info, ok := Curriculum[classNum][subject]
	return info, ok
}

func GetChapterInfo(classNum int, subject string, chapterID int) (Chapter, bool) {
	info, ok := GetSubjectInfo(classNum, subject)
	if !ok {
		return Chapter{}, false
	}
	for _, ch := range info.Chapters {
		if ch.ID == chapterID {
			return ch, true
		}
	}
	return Chapter{}, false
}
