// Package fire implements the external pool-fire relief case.
//
// The heat absorbed by the wetted surface follows either NFPA 30 or API 521:
//
//	NFPA 30     Q = 20,000 A              A ≤ 200 ft²
//	            Q = 199,300 A^0.566       200 < A ≤ 1,000
//	            Q = 963,400 A^0.338       1,000 < A ≤ 2,800
//	            Q = 21,000 A^0.82         A > 2,800
//	API 521     Q = 21,000 F A^0.82       adequate drainage and firefighting
//	            Q = 34,500 F A^0.82       otherwise
//
// Q is Btu/hr and A is ft². NFPA 30 tabulates band one from 20 ft²; smaller
// positive areas fall into band one here. The bands are discontinuous at
// their edges exactly as the standard is.
//
// F is the environmental factor: 1.0 for a bare vessel, 0.03 for
// earth-covered storage, 0 below grade, and an insulation credit otherwise.
// It applies to API 521 only.
//
// The relieving rate is Q divided by the latent heat of the stored liquid.
package fire
