package svgmap

import "github.com/beevik/etree"

// compassElement parses the pre-authored compass rose fragment into a fresh
// element. The fragment is fixed artwork, not derived from data.
func compassElement() *etree.Element {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(compassRoseSVG); err != nil {
		// The fragment is a compile-time constant; a parse failure is a bug.
		panic("svgmap: bad compass rose fragment: " + err.Error())
	}
	return doc.Root()
}

const compassRoseSVG = `<g id="compass_rose" transform="matrix(1,0,0,1,590,300)">
    <polygon opacity="0.5" fill-rule="evenodd" clip-rule="evenodd" fill="#422D16" points="724.8,394.2 722.3,394.3 721.1,394.4
        719.9,394.7 717.5,395.3 715.3,396.1 713.1,397.1 711.1,398.3 709.2,399.8 707.4,401.4 705.9,403.2 704.5,405.1 703.2,407.1
        702.2,409.2 701.4,411.4 700.7,413.9 700.3,416.3 700.2,418.8 700.3,421.2 700.7,423.7 701.4,426 702.2,428.2 703.2,430.4
        704.5,432.4 705.9,434.3 707.4,436.1 709.2,437.6 711.1,439.1 713.1,440.3 715.3,441.3 717.5,442.2 719.9,442.8 722.3,443.1
        724.8,443.3 727.2,443.1 729.8,442.8 732,442.2 734.3,441.3 736.5,440.3 738.4,439.1 740.3,437.6 742.1,436.1 743.7,434.3
        745.1,432.4 746.3,430.4 747.4,428.2 748.2,426 748.8,423.7 749.1,421.2 749.3,418.8 749.1,416.3 748.8,413.9 748.2,411.4
        747.4,409.2 746.3,407.1 745.1,405.1 743.7,403.2 742.1,401.4 740.3,399.8 738.4,398.3 736.5,397.1 734.3,396.1 732,395.3
        729.8,394.7 727.2,394.3 724.8,394.2 	"/>
    <polygon fill="none" stroke="#FFFFFF" stroke-width="0.6776" points="724.8,394.2 722.3,394.3 721.1,394.4 719.9,394.7
        717.5,395.3 715.3,396.1 713.1,397.1 711.1,398.3 709.2,399.8 707.4,401.4 705.9,403.2 704.5,405.1 703.2,407.1 702.2,409.2
        701.4,411.4 700.7,413.9 700.3,416.3 700.2,418.8 700.3,421.2 700.7,423.7 701.4,426 702.2,428.2 703.2,430.4 704.5,432.4
        705.9,434.3 707.4,436.1 709.2,437.6 711.1,439.1 713.1,440.3 715.3,441.3 717.5,442.2 719.9,442.8 722.3,443.1 724.8,443.3
        727.2,443.1 729.8,442.8 732,442.2 734.3,441.3 736.5,440.3 738.4,439.1 740.3,437.6 742.1,436.1 743.7,434.3 745.1,432.4
        746.3,430.4 747.4,428.2 748.2,426 748.8,423.7 749.1,421.2 749.3,418.8 749.1,416.3 748.8,413.9 748.2,411.4 747.4,409.2
        746.3,407.1 745.1,405.1 743.7,403.2 742.1,401.4 740.3,399.8 738.4,398.3 736.5,397.1 734.3,396.1 732,395.3 729.8,394.7
        727.2,394.3 724.8,394.2 	"/>
    <polygon fill-rule="evenodd" clip-rule="evenodd" fill="#FFFFFF" points="765.7,418.8 734.2,414.8 734.9,418.8 765.7,418.8 	"/>
    <polygon fill-rule="evenodd" clip-rule="evenodd" fill="#FFFFFF" points="724.8,377.8 721,409.3 724.8,408.6 724.8,377.8 	"/>
    <polygon fill-rule="evenodd" clip-rule="evenodd" fill="#422D16" points="724.8,377.8 728.7,409.3 724.8,408.6 724.8,377.8 	"/>
    <polygon fill-rule="evenodd" clip-rule="evenodd" fill="#FFFFFF" points="724.8,459.7 728.7,428.1 724.8,428.9 724.8,459.7 	"/>
    <polygon fill-rule="evenodd" clip-rule="evenodd" fill="#422D16" points="724.8,459.7 721,428.1 724.8,428.9 724.8,459.7 	"/>
    <polygon fill-rule="evenodd" clip-rule="evenodd" fill="#FFFFFF" points="695.9,389.8 715.4,414.9 717.7,411.6 695.9,389.8 	"/>
    <polygon fill-rule="evenodd" clip-rule="evenodd" fill="#422D16" points="695.9,389.8 721,409.2 717.7,411.6 695.9,389.8 	"/>
    <polygon fill-rule="evenodd" clip-rule="evenodd" fill="#FFFFFF" points="753.7,447.7 734.2,422.5 732,425.9 753.7,447.7 	"/>
    <polygon fill-rule="evenodd" clip-rule="evenodd" fill="#422D16" points="753.5,447.7 728.6,428.1 732,425.9 753.5,447.7 	"/>
    <polygon fill-rule="evenodd" clip-rule="evenodd" fill="#FFFFFF" points="683.8,418.8 715.4,422.7 714.6,418.8 683.8,418.8 	"/>
    <polygon fill-rule="evenodd" clip-rule="evenodd" fill="#422D16" points="683.8,418.8 715.4,414.8 714.6,418.8 683.8,418.8 	"/>
    <polygon fill-rule="evenodd" clip-rule="evenodd" fill="#422D16" points="765.7,418.8 734.2,422.7 734.9,418.8 765.7,418.8 	"/>
    <polygon fill-rule="evenodd" clip-rule="evenodd" fill="#FFFFFF" points="695.9,447.7 721,428.1 717.7,425.9 695.9,447.7 	"/>
    <polygon fill-rule="evenodd" clip-rule="evenodd" fill="#422D16" points="695.9,447.7 715.4,422.4 717.7,425.9 695.9,447.7 	"/>
    <polygon fill-rule="evenodd" clip-rule="evenodd" fill="#FFFFFF" points="753.7,389.8 728.6,409.2 732,411.6 753.7,389.8 	"/>
    <polygon fill-rule="evenodd" clip-rule="evenodd" fill="#422D16" points="753.7,389.8 734.2,414.9 732,411.6 753.7,389.8 	"/>
    <path fill="#422D16" d="M720.8,373.8c0,1.2,0.2,1.6,0.5,1.7c0.3,0.1,0.5,0.1,0.8,0.1c0.2,0,0.3,0,0.3,0.1c0,0.1-0.1,0.2-0.3,0.2
        c-1,0-1.6,0-1.9,0c-0.1,0-0.8,0-1.6,0c-0.2,0-0.3,0-0.3-0.2c0-0.1,0.1-0.1,0.2-0.1c0.2,0,0.5,0,0.7-0.1c0.4-0.1,0.5-0.6,0.5-1.9
        l0.1-9c0-0.3,0-0.5,0.2-0.5c0.2,0,0.3,0.2,0.6,0.5c0.2,0.2,2.5,2.7,4.7,4.9c1,1,3.1,3.2,3.3,3.5h0.1l-0.2-6.8
        c0-0.9-0.2-1.2-0.5-1.4c-0.2-0.1-0.6-0.1-0.8-0.1c-0.2,0-0.2,0-0.2-0.1c0-0.1,0.2-0.1,0.4-0.1c0.8,0,1.5,0,1.8,0c0.2,0,0.7,0,1.5,0
        c0.2,0,0.3,0,0.3,0.1c0,0.1-0.1,0.1-0.3,0.1c-0.2,0-0.3,0-0.5,0c-0.4,0.1-0.5,0.4-0.6,1.3l-0.2,9.6c0,0.3-0.1,0.5-0.2,0.5
        c-0.2,0-0.3-0.2-0.5-0.3c-1-0.9-2.9-2.9-4.5-4.5c-1.7-1.6-3.3-3.5-3.6-3.8h0L720.8,373.8z"/>
    <path fill="#422D16" d="M722.4,474.6c-0.2-0.1-0.3-0.2-0.3-0.5c0-0.8,0.1-1.7,0.1-2c0-0.2,0.1-0.4,0.2-0.4c0.1,0,0.2,0.1,0.2,0.3
        c0,0.2,0.1,0.5,0.1,0.8c0.3,1.1,1.2,1.5,2.2,1.5c1.4,0,2-0.9,2-1.7c0-0.7-0.2-1.5-1.5-2.4l-0.7-0.5c-1.7-1.3-2.2-2.4-2.2-3.6
        c0-1.7,1.4-2.9,3.5-2.9c1,0,1.6,0.2,2,0.3c0.1,0,0.2,0.1,0.2,0.2c0,0.2-0.1,0.6-0.1,1.8c0,0.3,0,0.5-0.2,0.5
        c-0.1,0-0.2-0.1-0.2-0.3c0-0.1-0.1-0.6-0.4-1c-0.2-0.3-0.7-0.7-1.7-0.7c-1.1,0-1.8,0.7-1.8,1.6c0,0.7,0.3,1.2,1.6,2.2l0.4,0.3
        c1.8,1.4,2.5,2.4,2.5,3.9c0,0.9-0.3,1.9-1.4,2.6c-0.8,0.5-1.6,0.6-2.4,0.6C723.8,475,723.1,474.9,722.4,474.6z"/>
    <path fill="#422D16" d="M768.4,417.1c0-2.3,0-2.7,0-3.2c0-0.5-0.2-0.8-0.7-0.9c-0.1,0-0.4,0-0.6,0c-0.2,0-0.3,0-0.3-0.1
        c0-0.1,0.1-0.1,0.3-0.1c0.8,0,1.8,0,2.2,0c0.5,0,3.5,0,3.8,0c0.3,0,0.5-0.1,0.7-0.1c0.1,0,0.2-0.1,0.2-0.1c0.1,0,0.1,0.1,0.1,0.1
        c0,0.1-0.1,0.3-0.1,1c0,0.2,0,0.8-0.1,1c0,0.1,0,0.2-0.2,0.2c-0.1,0-0.1-0.1-0.1-0.2c0-0.1,0-0.4-0.1-0.5c-0.1-0.3-0.3-0.5-1-0.5
        c-0.3,0-1.8-0.1-2.2-0.1c-0.1,0-0.1,0-0.1,0.2v3.8c0,0.1,0,0.2,0.1,0.2c0.3,0,2.1,0,2.4,0c0.4,0,0.6-0.1,0.7-0.2
        c0.1-0.1,0.2-0.2,0.2-0.2c0.1,0,0.1,0,0.1,0.1c0,0.1-0.1,0.3-0.1,1.1c0,0.3-0.1,0.9-0.1,1c0,0.1,0,0.3-0.1,0.3
        c-0.1,0-0.1-0.1-0.1-0.1c0-0.2,0-0.4-0.1-0.5c-0.1-0.3-0.3-0.5-0.9-0.6c-0.3,0-1.8,0-2.2,0c-0.1,0-0.1,0.1-0.1,0.2v1.2
        c0,0.5,0,1.9,0,2.4c0,1,0.3,1.3,1.8,1.3c0.4,0,1,0,1.4-0.2c0.4-0.2,0.6-0.5,0.7-1.1c0-0.2,0.1-0.2,0.2-0.2c0.1,0,0.1,0.1,0.1,0.3
        c0,0.3-0.1,1.4-0.2,1.7c-0.1,0.4-0.2,0.4-0.8,0.4c-2.3,0-3.3-0.1-4.2-0.1c-0.3,0-1.3,0-1.9,0c-0.2,0-0.3,0-0.3-0.2
        c0-0.1,0.1-0.1,0.2-0.1c0.2,0,0.4,0,0.5-0.1c0.3-0.1,0.4-0.4,0.4-0.8c0.1-0.6,0.1-1.8,0.1-3.2V417.1z"/>
    <path fill="#422D16" d="M667.9,414.1c-0.2-0.6-0.3-0.9-0.6-1.1c-0.2-0.1-0.5-0.1-0.6-0.1c-0.2,0-0.2,0-0.2-0.1
        c0-0.1,0.1-0.1,0.3-0.1c0.8,0,1.6,0,1.8,0c0.1,0,0.8,0,1.7,0c0.2,0,0.3,0,0.3,0.1c0,0.1-0.1,0.1-0.3,0.1c-0.1,0-0.3,0-0.4,0.1
        c-0.1,0.1-0.2,0.2-0.2,0.3c0,0.2,0.2,0.7,0.3,1.4c0.3,1,1.7,5.6,1.9,6.4h0l2.9-7.9c0.2-0.4,0.3-0.5,0.4-0.5c0.2,0,0.2,0.2,0.4,0.7
        l3.2,7.6h0c0.3-1,1.5-5,2-6.8c0.1-0.3,0.2-0.7,0.2-0.9c0-0.2-0.1-0.5-0.7-0.5c-0.2,0-0.3,0-0.3-0.1c0-0.1,0.1-0.1,0.3-0.1
        c0.8,0,1.4,0,1.6,0c0.1,0,0.8,0,1.3,0c0.2,0,0.3,0,0.3,0.1c0,0.1-0.1,0.2-0.2,0.2c-0.2,0-0.4,0-0.5,0.1c-0.4,0.1-0.5,0.7-0.9,1.6
        c-0.7,1.9-2.3,6.7-3,9c-0.2,0.5-0.2,0.7-0.4,0.7c-0.2,0-0.2-0.2-0.5-0.7l-3.2-7.6h0c-0.3,0.8-2.3,6.1-3,7.5
        c-0.3,0.6-0.4,0.8-0.5,0.8c-0.2,0-0.2-0.2-0.3-0.6L667.9,414.1z"/>
    <polyline fill-rule="evenodd" clip-rule="evenodd" fill="#422D16" points="724.8,408.4 724.8,408.4 724.8,408.4 723.8,408.4
        722.7,408.6 722.7,408.6 721.8,408.8 720.8,409.2 720.8,409.2 719.9,409.6 719.9,409.6 719,410.2 718.2,410.7 718.2,410.7
        717.5,411.4 717.5,411.4 716.8,412.2 716.8,412.2 716.2,413 715.7,413.8 715.7,413.8 715.2,414.7 715.2,414.7 714.9,415.7
        714.9,415.7 714.7,416.7 714.4,417.7 714.4,417.7 714.4,418.8 714.4,419.8 714.4,419.8 714.7,420.9 714.9,421.8 714.9,421.8
        715.2,422.8 715.2,422.8 715.7,423.7 716.2,424.6 716.2,424.6 716.8,425.4 716.8,425.4 717.5,426.1 718.2,426.8 718.2,426.8
        719,427.4 719.9,427.9 719.9,427.9 720.8,428.3 720.8,428.3 721.8,428.7 722.7,429 723.8,429.1 723.8,429.1 724.8,429.2 726.9,429
        728.9,428.3 728.9,428.3 729.7,427.9 729.7,427.9 730.6,427.4 730.6,427.4 732.1,426.1 732.1,426.1 733.4,424.6 733.9,423.7
        734.3,422.8 734.7,421.8 734.7,421.8 735,420.9 735.2,418.8 735.2,418.8 735.1,417.7 735.1,417.7 735,416.7 735,416.7 734.7,415.7
        734.7,415.7 734.3,414.7 733.9,413.8 733.4,413 732.8,412.2 732.8,412.2 732.1,411.4 731.4,410.7 731.4,410.7 730.6,410.2
        729.7,409.6 729.7,409.6 728.9,409.2 728.9,409.2 727.9,408.8 726.9,408.6 726.9,408.6 725.8,408.4 724.8,408.4 724.8,408.4 	"/>
</g>`
