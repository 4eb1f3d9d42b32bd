package domain

// FishProof is the text sent by the fishproof command.
const FishProof = `**On the existence of fish**

Suppose, for contradiction, that fish do not exist.

Then every aquarium is a box of decorated water, and every aquarium owner has spent years feeding flakes to nothing. Yet the flakes disappear. Water does not eat. Gravel does not eat. The little diver ornament has never once been seen eating. Something in the tank is eating the flakes.

Call that something a fish.

Further, fishermen return from the sea with heavy nets. If fish did not exist, the nets would weigh the same going out as coming back, and the fishermen would have noticed long ago and found another job. They have not found another job. Therefore the nets are heavier, and the extra weight is fish.

Finally, consider the word "fish". Every language has one. Nobody names a thing that is not there, except for unicorns, and unicorns are not in the sea.

We reach a contradiction. Fish exist. ∎`
